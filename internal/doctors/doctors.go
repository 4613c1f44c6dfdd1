package doctors

import (
	"errors"
	"fmt"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type Doctor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Available bool    `json:"available"`
	Rating    float64 `json:"rating"`
}

type Consultation struct {
	ID         string `json:"consultation_id"`
	DoctorName string `json:"doctor_name"`
	Message    string `json:"message"`
}

var roster = []Doctor{
	{ID: "doc1", Name: "Dr. Sarah Mitchell", Specialty: "General Physician", Available: true, Rating: 4.8},
	{ID: "doc2", Name: "Dr. James Chen", Specialty: "Cardiologist", Available: true, Rating: 4.9},
	{ID: "doc3", Name: "Dr. Emily Watson", Specialty: "Pulmonologist", Available: false, Rating: 4.7},
	{ID: "doc4", Name: "Dr. Michael Brown", Specialty: "Endocrinologist", Available: true, Rating: 4.6},
	{ID: "doc5", Name: "Dr. Lisa Patel", Specialty: "Emergency Medicine", Available: true, Rating: 4.9},
}

// List returns a copy of the roster so callers cannot mutate it.
func List() []Doctor {
	out := make([]Doctor, len(roster))
	copy(out, roster)
	return out
}

func Lookup(id string) (Doctor, bool) {
	for _, d := range roster {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// StartConsultation opens a mock consultation. Availability is informational
// only and does not block a start.
func StartConsultation(patientID, doctorID string) (Consultation, error) {
	doc, ok := Lookup(doctorID)
	if !ok {
		return Consultation{}, fmt.Errorf("%w: %s", ErrDoctorNotFound, doctorID)
	}

	id := fmt.Sprintf("consult_%s_%s_001", patientID, doctorID)
	return Consultation{
		ID:         id,
		DoctorName: doc.Name,
		Message:    fmt.Sprintf("Connecting to %s via 5G... Consultation started. ID: %s", doc.Name, id),
	}, nil
}
