package store

import (
	"context"
	"time"
)

// PatientRecord is one raw patient submission plus the BMI computed for it.
// Records are append-only.
type PatientRecord struct {
	ID            int64     `json:"id"`
	PatientID     string    `json:"patient_id"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	HeightCm      float64   `json:"height_cm"`
	WeightKg      float64   `json:"weight_kg"`
	BMI           float64   `json:"bmi"`
	BPSystolic    int       `json:"bp_systolic"`
	BPDiastolic   int       `json:"bp_diastolic"`
	HeartRate     int       `json:"heart_rate"`
	SpO2          int       `json:"spo2"`
	Glucose       int       `json:"glucose"`
	Medications   string    `json:"medications"`
	Smoking       bool      `json:"smoking"`
	FamilyHistory string    `json:"family_history"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordStore persists patient records. Append fills in ID and CreatedAt.
type RecordStore interface {
	Append(ctx context.Context, rec *PatientRecord) error
	Ping(ctx context.Context) error
	Close() error
}
