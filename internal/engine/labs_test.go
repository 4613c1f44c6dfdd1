package engine

import (
	"reflect"
	"testing"
)

func normalPanel() LabPanel {
	return LabPanel{
		Hemoglobin: 14,
		WhiteCells: 7,
		Platelets:  250,
		HbA1c:      5.2,
		Creatinine: 1.0,
		LDL:        80,
		ALT:        30,
	}
}

func TestAnalyzeLabs_AllNormal(t *testing.T) {
	report := AnalyzeLabs(normalPanel())
	if len(report.Alerts) != 0 {
		t.Fatalf("expected no alerts, got %+v", report.Alerts)
	}
	if report.Summary != "All lab values are within normal reference ranges." {
		t.Fatalf("unexpected summary: %q", report.Summary)
	}
	if report.Alerts == nil {
		t.Fatal("alerts should be an empty slice, not nil")
	}
}

func TestAnalyzeLabs_LowHemoglobin(t *testing.T) {
	panel := normalPanel()
	panel.Hemoglobin = 10

	report := AnalyzeLabs(panel)
	if len(report.Alerts) != 1 {
		t.Fatalf("expected one alert, got %+v", report.Alerts)
	}
	want := LabAlert{
		Parameter:      "Hemoglobin",
		Value:          10,
		ReferenceRange: "12.0-17.0",
		Status:         LabLow,
		Message:        "Hemoglobin is below normal (10.0 vs 12.0-17.0)",
	}
	if report.Alerts[0] != want {
		t.Fatalf("expected %+v, got %+v", want, report.Alerts[0])
	}
	if report.Summary != "Found 1 abnormal value(s). Please consult a healthcare provider." {
		t.Fatalf("unexpected summary: %q", report.Summary)
	}
}

func TestAnalyzeLabs_OrderAndFormatting(t *testing.T) {
	panel := LabPanel{
		Hemoglobin: 18.2,
		WhiteCells: 3.5,
		Platelets:  420,
		HbA1c:      6.1,
		Creatinine: 0.5,
		LDL:        130,
		ALT:        60,
	}

	report := AnalyzeLabs(panel)

	var params, ranges, messages []string
	for _, a := range report.Alerts {
		params = append(params, a.Parameter)
		ranges = append(ranges, a.ReferenceRange)
		messages = append(messages, a.Message)
	}

	wantParams := []string{"Hemoglobin", "White blood cells", "Platelets", "HbA1c", "Creatinine", "LDL cholesterol", "ALT"}
	if !reflect.DeepEqual(params, wantParams) {
		t.Fatalf("expected order %v, got %v", wantParams, params)
	}
	wantRanges := []string{"12.0-17.0", "4.0-11.0", "150-400", "4.0-5.6", "0.7-1.3", "0-100", "7-56"}
	if !reflect.DeepEqual(ranges, wantRanges) {
		t.Fatalf("expected ranges %v, got %v", wantRanges, ranges)
	}
	if messages[2] != "Platelets is above normal (420.0 vs 150-400)" {
		t.Fatalf("unexpected platelets message: %q", messages[2])
	}
	if messages[4] != "Creatinine is below normal (0.5 vs 0.7-1.3)" {
		t.Fatalf("unexpected creatinine message: %q", messages[4])
	}
	if report.Summary != "Found 7 abnormal value(s). Please consult a healthcare provider." {
		t.Fatalf("unexpected summary: %q", report.Summary)
	}
}

func TestAnalyzeLabs_BoundsAreInclusive(t *testing.T) {
	panel := LabPanel{Hemoglobin: 12.0, WhiteCells: 11.0, Platelets: 150, HbA1c: 5.6, Creatinine: 0.7, LDL: 0, ALT: 56}
	if report := AnalyzeLabs(panel); len(report.Alerts) != 0 {
		t.Fatalf("boundary values should not alert, got %+v", report.Alerts)
	}
}

func TestAnalyzeLabs_StatusMatchesDirection(t *testing.T) {
	panels := []LabPanel{
		{Hemoglobin: 1, WhiteCells: 100, Platelets: 1, HbA1c: 99, Creatinine: 0, LDL: 500, ALT: 0},
		{Hemoglobin: 30, WhiteCells: 0.1, Platelets: 1000, HbA1c: 1, Creatinine: 9, LDL: -1, ALT: 200},
	}
	ranges := make(map[string]ReferenceRange)
	for _, r := range ReferenceRanges() {
		ranges[r.Name] = r
	}

	for _, p := range panels {
		for _, a := range AnalyzeLabs(p).Alerts {
			r := ranges[a.Parameter]
			switch a.Status {
			case LabHigh:
				if !(a.Value > r.High) {
					t.Fatalf("HIGH alert for %s with value %v <= %v", a.Parameter, a.Value, r.High)
				}
			case LabLow:
				if !(a.Value < r.Low) {
					t.Fatalf("LOW alert for %s with value %v >= %v", a.Parameter, a.Value, r.Low)
				}
			default:
				t.Fatalf("unexpected status %q", a.Status)
			}
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		10:     "10.0",
		10.5:   "10.5",
		0.7:    "0.7",
		24.22:  "24.22",
		-3:     "-3.0",
		150.25: "150.25",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
