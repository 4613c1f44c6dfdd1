package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS patient_data (
    id BIGSERIAL PRIMARY KEY,
    patient_id TEXT NOT NULL,
    age INTEGER,
    gender TEXT,
    height_cm DOUBLE PRECISION,
    weight_kg DOUBLE PRECISION,
    bmi DOUBLE PRECISION,
    bp_systolic INTEGER,
    bp_diastolic INTEGER,
    heart_rate INTEGER,
    spo2 INTEGER,
    glucose INTEGER,
    medications TEXT,
    smoking BOOLEAN NOT NULL DEFAULT FALSE,
    family_history TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS patient_data_patient_id_idx ON patient_data (patient_id)`

const insertRecordSQL = `INSERT INTO patient_data (
		patient_id, age, gender, height_cm, weight_kg, bmi,
		bp_systolic, bp_diastolic, heart_rate, spo2, glucose,
		medications, smoking, family_history
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	RETURNING id, created_at`

type queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type PostgresStore struct {
	db    queryable
	close func()
}

// OpenPostgres connects a pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, url string, maxConns, minConns int32) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &PostgresStore{db: pool, close: pool.Close}, nil
}

// EnsureSchema creates the patient_data table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create patient_data table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, rec *PatientRecord) error {
	row := s.db.QueryRow(ctx, insertRecordSQL,
		rec.PatientID, rec.Age, rec.Gender, rec.HeightCm, rec.WeightKg, rec.BMI,
		rec.BPSystolic, rec.BPDiastolic, rec.HeartRate, rec.SpO2, rec.Glucose,
		rec.Medications, rec.Smoking, rec.FamilyHistory,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return fmt.Errorf("insert patient record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
