package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const RecordCreatedEvent = "patient.record.created"

const publishTimeout = 5 * time.Second

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// PublishingStore announces every successful append in the background. Publish
// errors are logged and never returned to the caller.
type PublishingStore struct {
	RecordStore
	publisher EventPublisher
	logger    zerolog.Logger
	timeout   time.Duration
	inflight  sync.WaitGroup
}

func WithPublisher(next RecordStore, publisher EventPublisher, logger zerolog.Logger) *PublishingStore {
	return &PublishingStore{RecordStore: next, publisher: publisher, logger: logger, timeout: publishTimeout}
}

func (s *PublishingStore) Append(ctx context.Context, rec *PatientRecord) error {
	if err := s.RecordStore.Append(ctx, rec); err != nil {
		return err
	}

	snapshot := *rec
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer cancel()

		if err := s.publisher.Publish(pubCtx, RecordCreatedEvent, &snapshot); err != nil {
			s.logger.Warn().Err(err).
				Int64("record_id", snapshot.ID).
				Str("patient_id", snapshot.PatientID).
				Msg("publish patient record event")
		}
	}()
	return nil
}

// Flush blocks until every pending publish has finished.
func (s *PublishingStore) Flush() error {
	s.inflight.Wait()
	return nil
}
