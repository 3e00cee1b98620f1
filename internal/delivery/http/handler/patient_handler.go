package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
	"github.com/lokesh74503/Hospital-management-system/internal/usecase"
	"github.com/lokesh74503/Hospital-management-system/pkg/response"
	"github.com/lokesh74503/Hospital-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// pagination reads page/size/sortBy/sortDir query params with the
// documented defaults (0, 10, id, asc).
func pagination(r *http.Request) (page, size int, sortBy, sortDir string) {
	query := r.URL.Query()
	page, _ = strconv.Atoi(query.Get("page"))
	size, err := strconv.Atoi(query.Get("size"))
	if err != nil || size < 1 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	sortBy = query.Get("sortBy")
	if sortBy == "" {
		sortBy = "id"
	}
	sortDir = query.Get("sortDir")
	if sortDir == "" {
		sortDir = "asc"
	}
	return page, size, sortBy, sortDir
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func listMeta(page, size int, total int64) *response.Meta {
	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}
	return &response.Meta{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}

func validGender(gender string) bool {
	switch gender {
	case entity.GenderMale, entity.GenderFemale, entity.GenderOther:
		return true
	}
	return false
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientUserIDExists:
			response.Error(w, http.StatusBadRequest, "Patient with this user ID already exists", nil)
		case usecase.ErrPatientPhoneExists:
			response.Error(w, http.StatusBadRequest, "Patient with this phone already exists", nil)
		case usecase.ErrPatientInsuranceNumberExists:
			response.Error(w, http.StatusBadRequest, "Patient with this insurance number already exists", nil)
		case usecase.ErrInvalidDateOfBirth:
			response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetPatientByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatientByUserID(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	page, size, sortBy, sortDir := pagination(r)

	patients, total, err := h.patientUsecase.GetAllPatients(r.Context(), page, size, sortBy, sortDir)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients, listMeta(page, size, total))
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientPhoneExists:
			response.Error(w, http.StatusBadRequest, "Patient with this phone already exists", nil)
		case usecase.ErrPatientInsuranceNumberExists:
			response.Error(w, http.StatusBadRequest, "Patient with this insurance number already exists", nil)
		case usecase.ErrInvalidDateOfBirth:
			response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	response.NoContent(w)
}

func (h *PatientHandler) SearchPatientsByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'name' is required", nil)
		return
	}

	patients, err := h.patientUsecase.SearchPatientsByName(r.Context(), name)
	if err != nil {
		response.InternalServerError(w, "Failed to search patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientByPhone(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	patient, err := h.patientUsecase.GetPatientByPhone(r.Context(), phone)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetPatientsByBloodGroup(w http.ResponseWriter, r *http.Request) {
	bloodGroup := mux.Vars(r)["bloodGroup"]

	patients, err := h.patientUsecase.GetPatientsByBloodGroup(r.Context(), bloodGroup)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientsByGender(w http.ResponseWriter, r *http.Request) {
	gender := mux.Vars(r)["gender"]
	if !validGender(gender) {
		response.Error(w, http.StatusBadRequest, "Invalid gender, use MALE, FEMALE or OTHER", nil)
		return
	}

	patients, err := h.patientUsecase.GetPatientsByGender(r.Context(), gender)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientsByInsuranceProvider(w http.ResponseWriter, r *http.Request) {
	provider := mux.Vars(r)["provider"]

	patients, err := h.patientUsecase.GetPatientsByInsuranceProvider(r.Context(), provider)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientByInsuranceNumber(w http.ResponseWriter, r *http.Request) {
	insuranceNumber := mux.Vars(r)["insuranceNumber"]

	patient, err := h.patientUsecase.GetPatientByInsuranceNumber(r.Context(), insuranceNumber)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetPatientsByAllergy(w http.ResponseWriter, r *http.Request) {
	allergy := r.URL.Query().Get("allergy")
	if allergy == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'allergy' is required", nil)
		return
	}

	patients, err := h.patientUsecase.GetPatientsByAllergy(r.Context(), allergy)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientsByMedicalHistory(w http.ResponseWriter, r *http.Request) {
	condition := r.URL.Query().Get("condition")
	if condition == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'condition' is required", nil)
		return
	}

	patients, err := h.patientUsecase.GetPatientsByMedicalHistory(r.Context(), condition)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientsByCreatedDateRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, err := time.Parse(time.RFC3339, query.Get("startDate"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid startDate, use RFC3339 datetime", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("endDate"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid endDate, use RFC3339 datetime", nil)
		return
	}

	patients, err := h.patientUsecase.GetPatientsByCreatedDateRange(r.Context(), start, end)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientsByBirthYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid birth year", nil)
		return
	}

	patients, err := h.patientUsecase.GetPatientsByBirthYear(r.Context(), year)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientsByBirthDateRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, err := time.Parse("2006-01-02", query.Get("startDate"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid startDate, use YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse("2006-01-02", query.Get("endDate"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid endDate, use YYYY-MM-DD", nil)
		return
	}

	patients, err := h.patientUsecase.GetPatientsByBirthDateRange(r.Context(), start, end)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatientStatistics(w http.ResponseWriter, r *http.Request) {
	statistics, err := h.patientUsecase.GetPatientStatistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patient statistics")
		return
	}

	response.Success(w, http.StatusOK, "Patient statistics retrieved successfully", statistics)
}

func (h *PatientHandler) ExistsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	exists, err := h.patientUsecase.ExistsByUserID(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to check patient existence")
		return
	}

	response.Success(w, http.StatusOK, "Existence check completed", dto.ExistsResponse{Exists: exists})
}

func (h *PatientHandler) ExistsByPhone(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	exists, err := h.patientUsecase.ExistsByPhone(r.Context(), phone)
	if err != nil {
		response.InternalServerError(w, "Failed to check patient existence")
		return
	}

	response.Success(w, http.StatusOK, "Existence check completed", dto.ExistsResponse{Exists: exists})
}

func (h *PatientHandler) ExistsByInsuranceNumber(w http.ResponseWriter, r *http.Request) {
	insuranceNumber := mux.Vars(r)["insuranceNumber"]

	exists, err := h.patientUsecase.ExistsByInsuranceNumber(r.Context(), insuranceNumber)
	if err != nil {
		response.InternalServerError(w, "Failed to check patient existence")
		return
	}

	response.Success(w, http.StatusOK, "Existence check completed", dto.ExistsResponse{Exists: exists})
}
