package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// DoctorRequest carries the full doctor payload for create and update.
type DoctorRequest struct {
	UserID          int64            `json:"user_id" validate:"required"`
	FirstName       string           `json:"first_name" validate:"required,notblank,max=50"`
	LastName        string           `json:"last_name" validate:"required,notblank,max=50"`
	Specialization  string           `json:"specialization" validate:"omitempty,max=100"`
	DepartmentID    *int64           `json:"department_id" validate:"omitempty"`
	LicenseNumber   string           `json:"license_number" validate:"required,notblank,max=50"`
	Phone           string           `json:"phone" validate:"omitempty,intl_phone,max=20"`
	Address         string           `json:"address" validate:"omitempty"`
	ExperienceYears *int             `json:"experience_years" validate:"omitempty,gte=0,lte=50"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty,gte=0"`
	IsAvailable     *bool            `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Specialization  string           `json:"specialization,omitempty"`
	DepartmentID    *int64           `json:"department_id,omitempty"`
	LicenseNumber   string           `json:"license_number"`
	Phone           string           `json:"phone,omitempty"`
	Address         string           `json:"address,omitempty"`
	ExperienceYears *int             `json:"experience_years,omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee,omitempty"`
	IsAvailable     *bool            `json:"is_available"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DoctorStatisticsResponse struct {
	TotalDoctors           int64           `json:"total_doctors"`
	AvailableDoctors       int64           `json:"available_doctors"`
	UnavailableDoctors     int64           `json:"unavailable_doctors"`
	DoctorsWithDepartment  int64           `json:"doctors_with_department"`
	AverageConsultationFee decimal.Decimal `json:"average_consultation_fee"`
}
