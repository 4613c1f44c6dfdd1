package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Skufu/vitalcheck/internal/doctors"
	"github.com/Skufu/vitalcheck/internal/engine"
	"github.com/Skufu/vitalcheck/internal/store"
)

var endpoints = []string{
	"POST /patient/data",
	"POST /predict/risk",
	"POST /lab/analyze",
	"POST /predict/disease",
	"GET /doctors",
	"POST /consult/start",
}

type handler struct {
	records store.RecordStore
	logger  zerolog.Logger
}

func (h *handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Smart Healthcare Platform API is running",
		"endpoints": endpoints,
	})
}

func (h *handler) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.records.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"store":  fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "ok"})
}

func (h *handler) submitPatientData(c *gin.Context) {
	var req patientDataRequest
	if !bindJSON(c, &req) {
		return
	}

	bmi, category, err := engine.ClassifyBMI(req.HeightCm, req.WeightKg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"details": measurementErrors(req.HeightCm, req.WeightKg),
		})
		return
	}

	rec := &store.PatientRecord{
		PatientID:     req.PatientID,
		Age:           *req.Age,
		Gender:        req.Gender,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		BMI:           bmi,
		BPSystolic:    *req.BPSystolic,
		BPDiastolic:   *req.BPDiastolic,
		HeartRate:     *req.HeartRate,
		SpO2:          *req.SpO2,
		Glucose:       *req.Glucose,
		Medications:   req.Medications,
		Smoking:       req.Smoking,
		FamilyHistory: req.FamilyHistory,
	}
	if err := h.records.Append(c.Request.Context(), rec); err != nil {
		h.logger.Error().Err(err).Str("patient_id", req.PatientID).Msg("save patient data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save patient data"})
		return
	}

	c.JSON(http.StatusOK, patientDataResponse{
		PatientID:   req.PatientID,
		BMI:         bmi,
		BMICategory: category,
		Message:     fmt.Sprintf("Patient data saved. BMI: %s (%s)", engine.FormatNumber(bmi), category),
	})
}

func (h *handler) predictRisk(c *gin.Context) {
	var req riskRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, engine.ScoreRisk(req.vitals()))
}

func (h *handler) analyzeLabs(c *gin.Context) {
	var req labRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, engine.AnalyzeLabs(req.panel()))
}

func (h *handler) referenceRanges(c *gin.Context) {
	type rangeView struct {
		engine.ReferenceRange
		Range string `json:"reference_range"`
	}
	ranges := engine.ReferenceRanges()
	out := make([]rangeView, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, rangeView{ReferenceRange: r, Range: r.String()})
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) predictDisease(c *gin.Context) {
	var req diseaseRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, engine.PredictDisease(req.Symptoms))
}

func (h *handler) symptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": engine.KnownSymptoms()})
}

func (h *handler) listDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, doctors.List())
}

// startConsultation answers 200 even for unknown doctors; the miss is
// reported through the message.
func (h *handler) startConsultation(c *gin.Context) {
	var req consultRequest
	if !bindJSON(c, &req) {
		return
	}

	consult, err := doctors.StartConsultation(req.PatientID, req.DoctorID)
	if errors.Is(err, doctors.ErrDoctorNotFound) {
		c.JSON(http.StatusOK, doctors.Consultation{Message: "Doctor not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start consultation"})
		return
	}

	c.JSON(http.StatusOK, consult)
}

// measurementErrors reports the body measurements ClassifyBMI rejects, in the
// same shape bindJSON uses for validation failures.
func measurementErrors(heightCm, weightKg float64) []fieldError {
	out := make([]fieldError, 0, 2)
	if heightCm <= 0 {
		out = append(out, fieldError{Field: "height_cm", Message: "must be greater than 0"})
	}
	if weightKg <= 0 {
		out = append(out, fieldError{Field: "weight_kg", Message: "must be greater than 0"})
	}
	return out
}
