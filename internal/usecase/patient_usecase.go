package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/converter"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/repository"
	"github.com/lokesh74503/Hospital-management-system/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound              = errors.New("patient not found")
	ErrPatientUserIDExists          = errors.New("user ID already exists")
	ErrPatientPhoneExists           = errors.New("phone already exists")
	ErrPatientInsuranceNumberExists = errors.New("insurance number already exists")
	ErrInvalidDateOfBirth           = errors.New("invalid date of birth format, use YYYY-MM-DD")
)

const dateOfBirthLayout = "2006-01-02"

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	GetPatientByUserID(ctx context.Context, userID int64) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, page, size int, sortBy, sortDir string) ([]dto.PatientResponse, int64, error)
	UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int64) error

	SearchPatientsByName(ctx context.Context, name string) (*dto.PatientListResponse, error)
	GetPatientByPhone(ctx context.Context, phone string) (*dto.PatientResponse, error)
	GetPatientsByBloodGroup(ctx context.Context, bloodGroup string) (*dto.PatientListResponse, error)
	GetPatientsByGender(ctx context.Context, gender string) (*dto.PatientListResponse, error)
	GetPatientsByInsuranceProvider(ctx context.Context, provider string) (*dto.PatientListResponse, error)
	GetPatientByInsuranceNumber(ctx context.Context, insuranceNumber string) (*dto.PatientResponse, error)
	GetPatientsByAllergy(ctx context.Context, allergy string) (*dto.PatientListResponse, error)
	GetPatientsByMedicalHistory(ctx context.Context, condition string) (*dto.PatientListResponse, error)
	GetPatientsByCreatedDateRange(ctx context.Context, start, end time.Time) (*dto.PatientListResponse, error)
	GetPatientsByBirthYear(ctx context.Context, year int) (*dto.PatientListResponse, error)
	GetPatientsByBirthDateRange(ctx context.Context, start, end time.Time) (*dto.PatientListResponse, error)
	GetPatientStatistics(ctx context.Context) (*dto.PatientStatisticsResponse, error)

	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByInsuranceNumber(ctx context.Context, insuranceNumber string) (bool, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	events      service.EventPublisher
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	events service.EventPublisher,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		events:      events,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := converter.RequestToPatient(req, dateOfBirth)

	// Uniqueness is enforced by the storage constraints alone; a conflict
	// surfaces here and is mapped to the colliding field.
	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, u.mapPatientConflict(err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Publish(ctx, service.PatientEventsChannel, service.LifecycleToken("PATIENT", service.ActionCreated, patient.ID))

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatientByUserID(ctx context.Context, userID int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient by user ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, page, size int, sortBy, sortDir string) ([]dto.PatientResponse, int64, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}

	patients, total, err := u.patientRepo.FindAll(ctx, u.db, size, page*size, sortBy, sortDir)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	converter.ApplyPatientRequest(patient, req, dateOfBirth)

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, u.mapPatientConflict(err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Publish(ctx, service.PatientEventsChannel, service.LifecycleToken("PATIENT", service.ActionUpdated, patient.ID))

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.patientRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.events.Publish(ctx, service.PatientEventsChannel, service.LifecycleToken("PATIENT", service.ActionDeleted, id))

	return nil
}

func (u *patientUsecase) SearchPatientsByName(ctx context.Context, name string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.SearchByName(ctx, u.db, name)
	if err != nil {
		u.log.Warnf("Failed to search patients by name: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientByPhone(ctx context.Context, phone string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByPhone(ctx, u.db, phone)
	if err != nil {
		u.log.Warnf("Failed to find patient by phone: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatientsByBloodGroup(ctx context.Context, bloodGroup string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByBloodGroup(ctx, u.db, bloodGroup)
	if err != nil {
		u.log.Warnf("Failed to find patients by blood group: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientsByGender(ctx context.Context, gender string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByGender(ctx, u.db, gender)
	if err != nil {
		u.log.Warnf("Failed to find patients by gender: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientsByInsuranceProvider(ctx context.Context, provider string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByInsuranceProvider(ctx, u.db, provider)
	if err != nil {
		u.log.Warnf("Failed to find patients by insurance provider: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientByInsuranceNumber(ctx context.Context, insuranceNumber string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByInsuranceNumber(ctx, u.db, insuranceNumber)
	if err != nil {
		u.log.Warnf("Failed to find patient by insurance number: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatientsByAllergy(ctx context.Context, allergy string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByAllergiesContaining(ctx, u.db, allergy)
	if err != nil {
		u.log.Warnf("Failed to find patients by allergy: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientsByMedicalHistory(ctx context.Context, condition string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByMedicalHistoryContaining(ctx, u.db, condition)
	if err != nil {
		u.log.Warnf("Failed to find patients by medical history: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientsByCreatedDateRange(ctx context.Context, start, end time.Time) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByCreatedAtBetween(ctx, u.db, start, end)
	if err != nil {
		u.log.Warnf("Failed to find patients by created date range: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientsByBirthYear(ctx context.Context, year int) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByBirthYear(ctx, u.db, year)
	if err != nil {
		u.log.Warnf("Failed to find patients by birth year: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientsByBirthDateRange(ctx context.Context, start, end time.Time) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByDateOfBirthBetween(ctx, u.db, start, end)
	if err != nil {
		u.log.Warnf("Failed to find patients by birth date range: %+v", err)
		return nil, err
	}

	return u.toListResponse(patients), nil
}

func (u *patientUsecase) GetPatientStatistics(ctx context.Context) (*dto.PatientStatisticsResponse, error) {
	stats := &dto.PatientStatisticsResponse{}

	var err error
	if stats.TotalPatients, err = u.patientRepo.Count(ctx, u.db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.MalePatients, err = u.patientRepo.CountByGender(ctx, u.db, entity.GenderMale); err != nil {
		return nil, err
	}
	if stats.FemalePatients, err = u.patientRepo.CountByGender(ctx, u.db, entity.GenderFemale); err != nil {
		return nil, err
	}
	if stats.OtherGenderPatients, err = u.patientRepo.CountByGender(ctx, u.db, entity.GenderOther); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAllUnpaged(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load patients for statistics: %+v", err)
		return nil, err
	}
	for _, patient := range patients {
		if strings.TrimSpace(patient.InsuranceProvider) != "" {
			stats.PatientsWithInsurance++
		}
		if strings.TrimSpace(patient.Allergies) != "" {
			stats.PatientsWithAllergies++
		}
	}

	return stats, nil
}

func (u *patientUsecase) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	return u.patientRepo.ExistsByUserID(ctx, u.db, userID)
}

func (u *patientUsecase) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return u.patientRepo.ExistsByPhone(ctx, u.db, phone)
}

func (u *patientUsecase) ExistsByInsuranceNumber(ctx context.Context, insuranceNumber string) (bool, error) {
	return u.patientRepo.ExistsByInsuranceNumber(ctx, u.db, insuranceNumber)
}

func (u *patientUsecase) toListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}

func (u *patientUsecase) mapPatientConflict(err error) error {
	if isDuplicateKeyError(err, "user_id") {
		return ErrPatientUserIDExists
	}
	if isDuplicateKeyError(err, "phone") {
		return ErrPatientPhoneExists
	}
	if isDuplicateKeyError(err, "insurance_number") {
		return ErrPatientInsuranceNumberExists
	}
	return err
}
