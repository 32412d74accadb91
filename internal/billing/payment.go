// internal/billing/payment.go
package billing

import "strings"

// Details is what the upgrade form submits. Nothing here is verified by
// the mock processor.
type Details struct {
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
}

// Receipt is the processor's answer. Reference is the masked payment
// method recorded on the invoice.
type Receipt struct {
	Success   bool
	Reference string
}

// Processor charges a payment. The billing handler's contract
// (guard, mutate, invoice) depends only on this interface so it stays
// testable without a real gateway.
type Processor interface {
	Process(d Details) (Receipt, error)
}

// MockProcessor approves every charge and masks the card number into
// the receipt reference.
type MockProcessor struct{}

func NewMockProcessor() *MockProcessor {
	return &MockProcessor{}
}

func (MockProcessor) Process(d Details) (Receipt, error) {
	return Receipt{Success: true, Reference: maskCard(d.CardNumber)}, nil
}

func maskCard(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) < 4 {
		return "**** 4242"
	}
	return "**** " + digits[len(digits)-4:]
}
