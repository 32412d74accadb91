package billing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockProcessorMasksCard(t *testing.T) {
	p := NewMockProcessor()

	receipt, err := p.Process(Details{CardholderName: "Jane Roe", CardNumber: "4242 4242 4242 1881"})
	require.NoError(t, err)
	require.True(t, receipt.Success)
	require.Equal(t, "**** 1881", receipt.Reference)
}

func TestMockProcessorDefaultsReference(t *testing.T) {
	p := NewMockProcessor()

	receipt, err := p.Process(Details{})
	require.NoError(t, err)
	require.True(t, receipt.Success)
	require.Equal(t, "**** 4242", receipt.Reference)
}
