package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisSeqKey = "patient_data:seq"
	redisAllKey = "patient_data:all"
)

// RedisStore appends JSON-encoded records to per-patient lists and to a
// global list. IDs come from an INCR counter.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func OpenRedis(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, now: time.Now}, nil
}

func patientKey(patientID string) string {
	return "patient_data:" + patientID
}

func (s *RedisStore) Append(ctx context.Context, rec *PatientRecord) error {
	id, err := s.client.Incr(ctx, redisSeqKey).Result()
	if err != nil {
		return fmt.Errorf("allocate record id: %w", err)
	}
	rec.ID = id
	rec.CreatedAt = s.now().UTC()

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode patient record: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, patientKey(rec.PatientID), payload)
		pipe.RPush(ctx, redisAllKey, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append patient record: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
