package doctors

import (
	"errors"
	"testing"
)

func TestListReturnsCopy(t *testing.T) {
	list := List()
	if len(list) != 5 {
		t.Fatalf("expected 5 doctors, got %d", len(list))
	}
	list[0].Name = "changed"
	if d, _ := Lookup("doc1"); d.Name != "Dr. Sarah Mitchell" {
		t.Fatalf("roster mutated through List(): %+v", d)
	}
}

func TestStartConsultation(t *testing.T) {
	c, err := StartConsultation("p42", "doc2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "consult_p42_doc2_001" || c.DoctorName != "Dr. James Chen" {
		t.Fatalf("unexpected consultation: %+v", c)
	}
	want := "Connecting to Dr. James Chen via 5G... Consultation started. ID: consult_p42_doc2_001"
	if c.Message != want {
		t.Fatalf("expected message %q, got %q", want, c.Message)
	}
}

func TestStartConsultationUnavailableDoctor(t *testing.T) {
	if _, err := StartConsultation("p1", "doc3"); err != nil {
		t.Fatalf("unavailable doctors can still be contacted, got %v", err)
	}
}

func TestStartConsultationUnknownDoctor(t *testing.T) {
	_, err := StartConsultation("p1", "doc99")
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}
