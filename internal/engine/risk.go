package engine

import "strings"

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

const normalVitalsExplanation = "Vital signs appear within normal ranges. No significant risk indicators detected."

// Vitals is one set of readings to score. SpO2 is a percentage.
type Vitals struct {
	Systolic  int
	Diastolic int
	Glucose   int
	SpO2      int
}

// RiskVerdict is the aggregated outcome of ScoreRisk.
type RiskVerdict struct {
	Level       RiskLevel `json:"risk_level"`
	Explanation string    `json:"explanation"`
	Confidence  float64   `json:"confidence"`
	Color       string    `json:"color_code"`
}

type rung struct {
	matches func(Vitals) bool
	score   int
	message string
}

// A ladder contributes the first rung that matches, or nothing.
type ladder struct {
	name  string
	rungs []rung
}

func (l ladder) evaluate(v Vitals) (rung, bool) {
	for _, r := range l.rungs {
		if r.matches(v) {
			return r, true
		}
	}
	return rung{}, false
}

var riskLadders = []ladder{
	{
		name: "cardiac",
		rungs: []rung{
			{func(v Vitals) bool { return v.Systolic >= 180 || v.Diastolic >= 120 }, 90, "Severe hypertension - high cardiac risk"},
			{func(v Vitals) bool { return v.Systolic >= 140 || v.Diastolic >= 90 }, 70, "Elevated blood pressure - moderate cardiac risk"},
			{func(v Vitals) bool { return v.Systolic >= 120 || v.Diastolic >= 80 }, 40, "Borderline blood pressure - watch for cardiac risk"},
		},
	},
	{
		name: "metabolic",
		rungs: []rung{
			{func(v Vitals) bool { return v.Glucose >= 200 }, 90, "Very high glucose - high diabetes risk"},
			{func(v Vitals) bool { return v.Glucose >= 126 }, 70, "Elevated glucose - moderate diabetes risk"},
			{func(v Vitals) bool { return v.Glucose >= 100 }, 40, "Slightly elevated glucose - low diabetes risk"},
		},
	},
	{
		name: "respiratory",
		rungs: []rung{
			{func(v Vitals) bool { return v.SpO2 < 90 }, 90, "Low oxygen saturation - high respiratory risk"},
			{func(v Vitals) bool { return v.SpO2 < 95 }, 60, "Borderline oxygen - moderate respiratory risk"},
			{func(v Vitals) bool { return v.SpO2 < 97 }, 35, "Slightly low oxygen - mild respiratory risk"},
		},
	},
}

// ScoreRisk runs the cardiac, metabolic and respiratory ladders and folds
// their contributions into one verdict.
func ScoreRisk(v Vitals) RiskVerdict {
	var (
		messages []string
		maxScore int
		total    int
	)
	for _, l := range riskLadders {
		r, ok := l.evaluate(v)
		if !ok {
			continue
		}
		messages = append(messages, r.message)
		total += r.score
		if r.score > maxScore {
			maxScore = r.score
		}
	}

	if len(messages) == 0 {
		return RiskVerdict{
			Level:       RiskLow,
			Explanation: normalVitalsExplanation,
			Confidence:  85.0,
			Color:       "green",
		}
	}

	avgScore := float64(total) / float64(len(messages))

	verdict := RiskVerdict{
		Level:       RiskLow,
		Explanation: strings.Join(messages, " | "),
		Color:       "green",
	}
	switch {
	case maxScore >= 80 || avgScore >= 70:
		verdict.Level, verdict.Color = RiskHigh, "red"
	case maxScore >= 50 || avgScore >= 45:
		verdict.Level, verdict.Color = RiskMedium, "yellow"
	}

	confidence := float64(maxScore + 5)
	if confidence < 60 {
		confidence = 60
	}
	if confidence > 95 {
		confidence = 95
	}
	verdict.Confidence = roundTo(confidence, 1)

	return verdict
}
