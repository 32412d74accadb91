package api

import (
	"go.uber.org/zap"

	"tenantnotes/internal/billing"
	"tenantnotes/internal/events"
	"tenantnotes/internal/quota"
	"tenantnotes/internal/storage"
)

type API struct {
	Storage   *storage.Storage
	Quota     *quota.Checker
	Payments  billing.Processor
	Publisher events.Publisher
	Log       *zap.Logger
}

func NewAPI(store *storage.Storage, payments billing.Processor, publisher events.Publisher, log *zap.Logger) *API {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &API{
		Storage:   store,
		Quota:     quota.NewChecker(store),
		Payments:  payments,
		Publisher: publisher,
		Log:       log,
	}
}
