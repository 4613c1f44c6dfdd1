package engine

import "sort"

// Reference data shared by the classifiers. Nothing in this package writes to
// these tables after init.

type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Normal      BMICategory = "Normal"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
)

// bmiBands are half-open [floor, next floor) bands, scanned top-down.
var bmiBands = []struct {
	floor    float64
	category BMICategory
}{
	{floor: 30, category: Obese},
	{floor: 25, category: Overweight},
	{floor: 18.5, category: Normal},
}

// ReferenceRange is the normal interval for one lab parameter. Decimals controls
// how the bounds are printed in alerts.
type ReferenceRange struct {
	Key      string  `json:"key"`
	Name     string  `json:"parameter"`
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
	Decimals int     `json:"-"`
}

type labCheck struct {
	ReferenceRange
	value func(LabPanel) float64
}

// labChecks fixes both the reference ranges and the order alerts are emitted in.
var labChecks = []labCheck{
	{ReferenceRange{Key: "hb", Name: "Hemoglobin", Low: 12.0, High: 17.0, Decimals: 1}, func(p LabPanel) float64 { return p.Hemoglobin }},
	{ReferenceRange{Key: "wbc", Name: "White blood cells", Low: 4.0, High: 11.0, Decimals: 1}, func(p LabPanel) float64 { return p.WhiteCells }},
	{ReferenceRange{Key: "platelets", Name: "Platelets", Low: 150, High: 400}, func(p LabPanel) float64 { return p.Platelets }},
	{ReferenceRange{Key: "hba1c", Name: "HbA1c", Low: 4.0, High: 5.6, Decimals: 1}, func(p LabPanel) float64 { return p.HbA1c }},
	{ReferenceRange{Key: "creatinine", Name: "Creatinine", Low: 0.7, High: 1.3, Decimals: 1}, func(p LabPanel) float64 { return p.Creatinine }},
	{ReferenceRange{Key: "ldl", Name: "LDL cholesterol", Low: 0, High: 100}, func(p LabPanel) float64 { return p.LDL }},
	{ReferenceRange{Key: "alt", Name: "ALT", Low: 7, High: 56}, func(p LabPanel) float64 { return p.ALT }},
}

// ReferenceRanges returns a copy of the lab reference table in evaluation order.
func ReferenceRanges() []ReferenceRange {
	out := make([]ReferenceRange, 0, len(labChecks))
	for _, c := range labChecks {
		out = append(out, c.ReferenceRange)
	}
	return out
}

type Recommendation string

const (
	Monitor   Recommendation = "Monitor"
	Consult   Recommendation = "Consult"
	Emergency Recommendation = "Emergency"
)

// urgency orders recommendations for picking the primary one.
var urgency = map[Recommendation]int{
	Monitor:   1,
	Consult:   2,
	Emergency: 3,
}

type candidateRule struct {
	disease        string
	probability    float64
	recommendation Recommendation
}

var symptomTable = map[string][]candidateRule{
	"fever":               {{"Influenza", 75, Consult}, {"COVID-19", 70, Consult}, {"Common Cold", 65, Monitor}},
	"cough":               {{"Bronchitis", 70, Consult}, {"Asthma", 60, Consult}, {"Common Cold", 65, Monitor}},
	"headache":            {{"Migraine", 65, Monitor}, {"Tension Headache", 70, Monitor}, {"Hypertension", 55, Consult}},
	"fatigue":             {{"Anemia", 60, Consult}, {"Thyroid Issue", 55, Consult}, {"Sleep Disorder", 50, Monitor}},
	"chest pain":          {{"Cardiac Issue", 85, Emergency}, {"Angina", 75, Emergency}, {"Acid Reflux", 50, Consult}},
	"shortness of breath": {{"Asthma", 75, Consult}, {"COPD", 70, Emergency}, {"Anxiety", 55, Monitor}},
	"nausea":              {{"Gastritis", 65, Monitor}, {"Food Poisoning", 70, Consult}, {"Migraine", 55, Monitor}},
	"vomiting":            {{"Gastroenteritis", 75, Consult}, {"Food Poisoning", 70, Consult}, {"Migraine", 55, Monitor}},
	"joint pain":          {{"Arthritis", 70, Consult}, {"Rheumatoid Arthritis", 65, Consult}, {"Strain", 60, Monitor}},
	"dizziness":           {{"Vertigo", 70, Consult}, {"Low BP", 65, Monitor}, {"Dehydration", 60, Monitor}},
	"sore throat":         {{"Pharyngitis", 75, Monitor}, {"Strep Throat", 70, Consult}, {"Common Cold", 65, Monitor}},
	"runny nose":          {{"Common Cold", 75, Monitor}, {"Allergy", 70, Monitor}, {"Influenza", 60, Consult}},
	"back pain":           {{"Muscle Strain", 65, Monitor}, {"Disc Issue", 60, Consult}, {"Kidney Stone", 55, Emergency}},
	"abdominal pain":      {{"Gastritis", 60, Monitor}, {"Appendicitis", 70, Emergency}, {"IBS", 55, Consult}},
	"weight loss":         {{"Thyroid", 60, Consult}, {"Diabetes", 55, Consult}, {"Malabsorption", 50, Consult}},
	"high fever":          {{"Infection", 80, Emergency}, {"COVID-19", 75, Emergency}, {"Sepsis", 70, Emergency}},
}

// KnownSymptoms lists the symptom keys the predictor recognizes.
func KnownSymptoms() []string {
	out := make([]string, 0, len(symptomTable))
	for k := range symptomTable {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
