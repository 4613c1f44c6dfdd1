package server

import "github.com/Skufu/vitalcheck/internal/engine"

// Pointer fields let zero pass "required" while still rejecting absent keys.

type patientDataRequest struct {
	PatientID     string  `json:"patient_id" binding:"required"`
	Age           *int    `json:"age" binding:"required,gte=0,lte=150"`
	Gender        string  `json:"gender" binding:"required"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	BPSystolic    *int    `json:"bp_systolic" binding:"required,gte=0"`
	BPDiastolic   *int    `json:"bp_diastolic" binding:"required,gte=0"`
	HeartRate     *int    `json:"heart_rate" binding:"required,gte=0"`
	SpO2          *int    `json:"spo2" binding:"required,gte=0,lte=100"`
	Glucose       *int    `json:"glucose" binding:"required,gte=0"`
	Medications   string  `json:"medications"`
	Smoking       bool    `json:"smoking"`
	FamilyHistory string  `json:"family_history"`
}

type patientDataResponse struct {
	PatientID   string             `json:"patient_id"`
	BMI         float64            `json:"bmi"`
	BMICategory engine.BMICategory `json:"bmi_category"`
	Message     string             `json:"message"`
}

type riskRequest struct {
	BPSystolic  *int `json:"bp_systolic" binding:"required,gte=0"`
	BPDiastolic *int `json:"bp_diastolic" binding:"required,gte=0"`
	Glucose     *int `json:"glucose" binding:"required,gte=0"`
	SpO2        *int `json:"spo2" binding:"required,gte=0,lte=100"`
}

func (r riskRequest) vitals() engine.Vitals {
	return engine.Vitals{
		Systolic:  *r.BPSystolic,
		Diastolic: *r.BPDiastolic,
		Glucose:   *r.Glucose,
		SpO2:      *r.SpO2,
	}
}

type labRequest struct {
	Hemoglobin *float64 `json:"hb" binding:"required"`
	WhiteCells *float64 `json:"wbc" binding:"required"`
	Platelets  *float64 `json:"platelets" binding:"required"`
	HbA1c      *float64 `json:"hba1c" binding:"required"`
	Creatinine *float64 `json:"creatinine" binding:"required"`
	LDL        *float64 `json:"ldl" binding:"required"`
	ALT        *float64 `json:"alt" binding:"required"`
}

func (r labRequest) panel() engine.LabPanel {
	return engine.LabPanel{
		Hemoglobin: *r.Hemoglobin,
		WhiteCells: *r.WhiteCells,
		Platelets:  *r.Platelets,
		HbA1c:      *r.HbA1c,
		Creatinine: *r.Creatinine,
		LDL:        *r.LDL,
		ALT:        *r.ALT,
	}
}

type diseaseRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
}

type consultRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	DoctorID  string `json:"doctor_id" binding:"required"`
}
