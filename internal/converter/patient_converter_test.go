package converter

import (
	"testing"
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
)

func TestRequestToPatientNullableFields(t *testing.T) {
	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	req := &dto.PatientRequest{
		UserID:      42,
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1990-05-15",
		Phone:       "+14155552671",
	}

	patient := RequestToPatient(req, dob)

	if patient.Phone == nil || *patient.Phone != "+14155552671" {
		t.Errorf("expected phone to be set, got %v", patient.Phone)
	}
	// Empty optionals map to NULL so unique columns never collide
	if patient.InsuranceNumber != nil {
		t.Errorf("expected empty insurance number to map to nil, got %q", *patient.InsuranceNumber)
	}
	if patient.Gender != nil {
		t.Errorf("expected empty gender to map to nil, got %q", *patient.Gender)
	}
	if !patient.DateOfBirth.Equal(dob) {
		t.Errorf("expected date of birth %v, got %v", dob, patient.DateOfBirth)
	}
}

func TestApplyPatientRequestReplacesMutableFields(t *testing.T) {
	phone := "+14155552671"
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	patient := &entity.Patient{
		ID:          9,
		UserID:      42,
		FirstName:   "John",
		LastName:    "Doe",
		Phone:       &phone,
		BloodGroup:  "O+",
		CreatedAt:   created,
		DateOfBirth: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
	}

	newDob := time.Date(1991, 6, 16, 0, 0, 0, 0, time.UTC)
	req := &dto.PatientRequest{
		UserID:      99,
		FirstName:   "Johnny",
		LastName:    "Doe",
		DateOfBirth: "1991-06-16",
	}

	ApplyPatientRequest(patient, req, newDob)

	if patient.ID != 9 {
		t.Errorf("expected ID to be preserved, got %d", patient.ID)
	}
	if patient.UserID != 42 {
		t.Errorf("expected UserID to be preserved, got %d", patient.UserID)
	}
	if !patient.CreatedAt.Equal(created) {
		t.Errorf("expected CreatedAt to be preserved, got %v", patient.CreatedAt)
	}
	if patient.FirstName != "Johnny" {
		t.Errorf("expected first name to be replaced, got %q", patient.FirstName)
	}
	// Full replace: omitted optionals clear the stored values
	if patient.Phone != nil {
		t.Errorf("expected phone to be cleared, got %q", *patient.Phone)
	}
	if patient.BloodGroup != "" {
		t.Errorf("expected blood group to be cleared, got %q", patient.BloodGroup)
	}
	if !patient.DateOfBirth.Equal(newDob) {
		t.Errorf("expected date of birth %v, got %v", newDob, patient.DateOfBirth)
	}
}

func TestPatientToResponseFormatsDateOfBirth(t *testing.T) {
	gender := entity.GenderFemale
	patient := &entity.Patient{
		ID:          1,
		UserID:      2,
		FirstName:   "Jane",
		LastName:    "Doe",
		Gender:      &gender,
		DateOfBirth: time.Date(1985, 12, 3, 0, 0, 0, 0, time.UTC),
	}

	resp := PatientToResponse(patient)

	if resp.DateOfBirth != "1985-12-03" {
		t.Errorf("expected date of birth 1985-12-03, got %q", resp.DateOfBirth)
	}
	if resp.Gender != entity.GenderFemale {
		t.Errorf("expected gender %q, got %q", entity.GenderFemale, resp.Gender)
	}

	if PatientToResponse(nil) != nil {
		t.Error("expected nil patient to map to nil response")
	}
}
