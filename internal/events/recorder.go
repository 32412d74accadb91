// internal/events/recorder.go
package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"tenantnotes/internal/metrics"
	"tenantnotes/internal/model"
	"tenantnotes/internal/storage"
)

// Recorder drains the tenant events queue and persists each event as an
// audit row. Malformed or unpersistable messages are rejected to the DLQ.
type Recorder struct {
	ch      *amqp.Channel
	store   *storage.Storage
	log     *zap.Logger
	stopCh  chan struct{}
	workers int
}

func NewRecorder(pub *RabbitPublisher, store *storage.Storage, workers int, log *zap.Logger) *Recorder {
	return &Recorder{
		ch:      pub.GetChannel(),
		store:   store,
		log:     log,
		stopCh:  make(chan struct{}),
		workers: workers,
	}
}

func (rec *Recorder) Start() error {
	msgs, err := rec.ch.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for i := 0; i < rec.workers; i++ {
		go rec.run(msgs)
	}
	rec.log.Info("event recorder started", zap.Int("workers", rec.workers))
	return nil
}

func (rec *Recorder) run(msgs <-chan amqp.Delivery) {
	metrics.RecorderActive.Inc()
	defer metrics.RecorderActive.Dec()

	for {
		select {
		case <-rec.stopCh:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			if err := rec.record(msg.Body); err != nil {
				rec.log.Warn("failed to record event", zap.Error(err))
				_ = msg.Reject(false) // send to DLQ
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

func (rec *Recorder) Stop() {
	close(rec.stopCh)
}

func (rec *Recorder) record(body []byte) error {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}
	if e.TenantSlug == "" || e.Type == "" {
		return errors.New("event missing tenant slug or type")
	}

	err := rec.store.InsertAuditEvent(&model.AuditEvent{
		TenantSlug: e.TenantSlug,
		ActorID:    e.ActorID,
		EventType:  e.Type,
		SubjectID:  e.SubjectID,
		Detail:     e.Detail,
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("persist event: %w", err)
	}

	metrics.EventsRecorded.WithLabelValues(e.TenantSlug).Inc()
	return nil
}
