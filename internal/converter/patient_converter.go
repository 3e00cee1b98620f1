package converter

import (
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                patient.ID,
		UserID:            patient.UserID,
		FirstName:         patient.FirstName,
		LastName:          patient.LastName,
		DateOfBirth:       patient.DateOfBirth.Format(dateLayout),
		Gender:            stringValue(patient.Gender),
		Phone:             stringValue(patient.Phone),
		Address:           patient.Address,
		EmergencyContact:  stringValue(patient.EmergencyContact),
		BloodGroup:        patient.BloodGroup,
		Allergies:         patient.Allergies,
		MedicalHistory:    patient.MedicalHistory,
		InsuranceProvider: patient.InsuranceProvider,
		InsuranceNumber:   stringValue(patient.InsuranceNumber),
		CreatedAt:         patient.CreatedAt,
		UpdatedAt:         patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// RequestToPatient builds a new Patient entity from a request payload
func RequestToPatient(req *dto.PatientRequest, dateOfBirth time.Time) *entity.Patient {
	return &entity.Patient{
		UserID:            req.UserID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       dateOfBirth,
		Gender:            nullableString(req.Gender),
		Phone:             nullableString(req.Phone),
		Address:           req.Address,
		EmergencyContact:  nullableString(req.EmergencyContact),
		BloodGroup:        req.BloodGroup,
		Allergies:         req.Allergies,
		MedicalHistory:    req.MedicalHistory,
		InsuranceProvider: req.InsuranceProvider,
		InsuranceNumber:   nullableString(req.InsuranceNumber),
	}
}

// ApplyPatientRequest overwrites every mutable field of an existing Patient
// with the request values. ID, UserID and CreatedAt are left untouched.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest, dateOfBirth time.Time) {
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.DateOfBirth = dateOfBirth
	patient.Gender = nullableString(req.Gender)
	patient.Phone = nullableString(req.Phone)
	patient.Address = req.Address
	patient.EmergencyContact = nullableString(req.EmergencyContact)
	patient.BloodGroup = req.BloodGroup
	patient.Allergies = req.Allergies
	patient.MedicalHistory = req.MedicalHistory
	patient.InsuranceProvider = req.InsuranceProvider
	patient.InsuranceNumber = nullableString(req.InsuranceNumber)
}

// nullableString maps "" to NULL so optional unique columns never collide
// on the empty string.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
