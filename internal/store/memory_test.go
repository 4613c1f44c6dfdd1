package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreAppendAssignsIDs(t *testing.T) {
	s := NewMemoryStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first := &PatientRecord{PatientID: "p1", BMI: 24.22}
	second := &PatientRecord{PatientID: "p2", BMI: 39.06}
	if err := s.Append(context.Background(), first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(context.Background(), second); err != nil {
		t.Fatalf("append: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected sequential ids, got %d and %d", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at %v, got %v", fixed, first.CreatedAt)
	}

	records := s.Records()
	if len(records) != 2 || records[1].PatientID != "p2" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Append(context.Background(), &PatientRecord{PatientID: "p"})
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, r := range s.Records() {
		if seen[r.ID] {
			t.Fatalf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 records, got %d", len(seen))
	}
}
