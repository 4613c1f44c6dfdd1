package engine

import "fmt"

// LabPanel holds the seven lab values the analyzer checks.
type LabPanel struct {
	Hemoglobin float64
	WhiteCells float64
	Platelets  float64
	HbA1c      float64
	Creatinine float64
	LDL        float64
	ALT        float64
}

type LabStatus string

const (
	LabHigh LabStatus = "HIGH"
	LabLow  LabStatus = "LOW"
)

type LabAlert struct {
	Parameter      string    `json:"parameter"`
	Value          float64   `json:"value"`
	ReferenceRange string    `json:"reference_range"`
	Status         LabStatus `json:"status"`
	Message        string    `json:"message"`
}

type LabReport struct {
	Alerts  []LabAlert `json:"alerts"`
	Summary string     `json:"summary"`
}

// AnalyzeLabs emits one alert per value strictly outside its reference range,
// in table order.
func AnalyzeLabs(p LabPanel) LabReport {
	alerts := make([]LabAlert, 0)

	for _, c := range labChecks {
		value := c.value(p)

		var status LabStatus
		var direction string
		switch {
		case value < c.Low:
			status, direction = LabLow, "below"
		case value > c.High:
			status, direction = LabHigh, "above"
		default:
			continue
		}

		ref := c.ReferenceRange.String()
		alerts = append(alerts, LabAlert{
			Parameter:      c.Name,
			Value:          value,
			ReferenceRange: ref,
			Status:         status,
			Message:        fmt.Sprintf("%s is %s normal (%s vs %s)", c.Name, direction, FormatNumber(value), ref),
		})
	}

	summary := "All lab values are within normal reference ranges."
	if len(alerts) > 0 {
		summary = fmt.Sprintf("Found %d abnormal value(s). Please consult a healthcare provider.", len(alerts))
	}

	return LabReport{Alerts: alerts, Summary: summary}
}
