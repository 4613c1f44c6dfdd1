package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps records in process. It is the default backend and is
// lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	records []PatientRecord
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Append(_ context.Context, rec *PatientRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = int64(len(m.records) + 1)
	rec.CreatedAt = m.now().UTC()
	m.records = append(m.records, *rec)
	return nil
}

// Records returns a snapshot of everything appended so far.
func (m *MemoryStore) Records() []PatientRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PatientRecord, len(m.records))
	copy(out, m.records)
	return out
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
