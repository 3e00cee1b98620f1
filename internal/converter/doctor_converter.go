package converter

import (
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		UserID:          doctor.UserID,
		FirstName:       doctor.FirstName,
		LastName:        doctor.LastName,
		Specialization:  doctor.Specialization,
		DepartmentID:    doctor.DepartmentID,
		LicenseNumber:   doctor.LicenseNumber,
		Phone:           stringValue(doctor.Phone),
		Address:         doctor.Address,
		ExperienceYears: doctor.ExperienceYears,
		ConsultationFee: doctor.ConsultationFee,
		IsAvailable:     doctor.IsAvailable,
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// RequestToDoctor builds a new Doctor entity from a request payload
func RequestToDoctor(req *dto.DoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		UserID:          req.UserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Specialization:  req.Specialization,
		DepartmentID:    req.DepartmentID,
		LicenseNumber:   req.LicenseNumber,
		Phone:           nullableString(req.Phone),
		Address:         req.Address,
		ExperienceYears: req.ExperienceYears,
		ConsultationFee: req.ConsultationFee,
		IsAvailable:     req.IsAvailable,
	}
}

// ApplyDoctorRequest overwrites every mutable field of an existing Doctor
// with the request values. ID, UserID and CreatedAt are left untouched.
func ApplyDoctorRequest(doctor *entity.Doctor, req *dto.DoctorRequest) {
	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.Specialization = req.Specialization
	doctor.DepartmentID = req.DepartmentID
	doctor.LicenseNumber = req.LicenseNumber
	doctor.Phone = nullableString(req.Phone)
	doctor.Address = req.Address
	doctor.ExperienceYears = req.ExperienceYears
	doctor.ConsultationFee = req.ConsultationFee
	if req.IsAvailable != nil {
		doctor.IsAvailable = req.IsAvailable
	}
}
