package dto

import (
	"time"
)

// Request DTOs

// PatientRequest carries the full patient payload. Create and update both
// take it; update replaces every mutable field with the incoming values.
type PatientRequest struct {
	UserID            int64  `json:"user_id" validate:"required"`
	FirstName         string `json:"first_name" validate:"required,notblank,max=50"`
	LastName          string `json:"last_name" validate:"required,notblank,max=50"`
	DateOfBirth       string `json:"date_of_birth" validate:"required"`
	Gender            string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Phone             string `json:"phone" validate:"omitempty,intl_phone,max=20"`
	Address           string `json:"address" validate:"omitempty"`
	EmergencyContact  string `json:"emergency_contact" validate:"omitempty,intl_phone,max=20"`
	BloodGroup        string `json:"blood_group" validate:"omitempty,max=5"`
	Allergies         string `json:"allergies" validate:"omitempty"`
	MedicalHistory    string `json:"medical_history" validate:"omitempty"`
	InsuranceProvider string `json:"insurance_provider" validate:"omitempty,max=100"`
	InsuranceNumber   string `json:"insurance_number" validate:"omitempty,max=50"`
}

// Response DTOs

type PatientResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	DateOfBirth       string    `json:"date_of_birth"`
	Gender            string    `json:"gender,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	EmergencyContact  string    `json:"emergency_contact,omitempty"`
	BloodGroup        string    `json:"blood_group,omitempty"`
	Allergies         string    `json:"allergies,omitempty"`
	MedicalHistory    string    `json:"medical_history,omitempty"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	InsuranceNumber   string    `json:"insurance_number,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientStatisticsResponse struct {
	TotalPatients         int64 `json:"total_patients"`
	MalePatients          int64 `json:"male_patients"`
	FemalePatients        int64 `json:"female_patients"`
	OtherGenderPatients   int64 `json:"other_gender_patients"`
	PatientsWithInsurance int64 `json:"patients_with_insurance"`
	PatientsWithAllergies int64 `json:"patients_with_allergies"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}
