package usecase

import (
	"context"
	"errors"

	"github.com/lokesh74503/Hospital-management-system/internal/converter"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
	"github.com/lokesh74503/Hospital-management-system/internal/domain/repository"
	"github.com/lokesh74503/Hospital-management-system/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorLicenseExists = errors.New("license number already exists")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	GetDoctorByUserID(ctx context.Context, userID int64) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context, page, size int, sortBy, sortDir string) ([]dto.DoctorResponse, int64, error)
	UpdateDoctor(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int64) error

	SearchDoctorsByName(ctx context.Context, name string) (*dto.DoctorListResponse, error)
	GetDoctorsBySpecialization(ctx context.Context, specialization string) (*dto.DoctorListResponse, error)
	GetDoctorsByDepartment(ctx context.Context, departmentID int64) (*dto.DoctorListResponse, error)
	GetDoctorByLicenseNumber(ctx context.Context, licenseNumber string) (*dto.DoctorResponse, error)
	GetAvailableDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorStatistics(ctx context.Context) (*dto.DoctorStatisticsResponse, error)
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	events     service.EventPublisher
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	events service.EventPublisher,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		events:     events,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := converter.RequestToDoctor(req)

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrDoctorLicenseExists
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Publish(ctx, service.DoctorEventsChannel, service.LifecycleToken("DOCTOR", service.ActionCreated, doctor.ID))

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctorByUserID(ctx context.Context, userID int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by user ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, page, size int, sortBy, sortDir string) ([]dto.DoctorResponse, int64, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}

	doctors, total, err := u.doctorRepo.FindAll(ctx, u.db, size, page*size, sortBy, sortDir)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	converter.ApplyDoctorRequest(doctor, req)

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrDoctorLicenseExists
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Publish(ctx, service.DoctorEventsChannel, service.LifecycleToken("DOCTOR", service.ActionUpdated, doctor.ID))

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Schedules cascade at the storage layer
	affectedRows, err := u.doctorRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.events.Publish(ctx, service.DoctorEventsChannel, service.LifecycleToken("DOCTOR", service.ActionDeleted, id))

	return nil
}

func (u *doctorUsecase) SearchDoctorsByName(ctx context.Context, name string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.SearchByName(ctx, u.db, name)
	if err != nil {
		u.log.Warnf("Failed to search doctors by name: %+v", err)
		return nil, err
	}

	return u.toListResponse(doctors), nil
}

func (u *doctorUsecase) GetDoctorsBySpecialization(ctx context.Context, specialization string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindBySpecialization(ctx, u.db, specialization)
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialization: %+v", err)
		return nil, err
	}

	return u.toListResponse(doctors), nil
}

func (u *doctorUsecase) GetDoctorsByDepartment(ctx context.Context, departmentID int64) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByDepartmentID(ctx, u.db, departmentID)
	if err != nil {
		u.log.Warnf("Failed to find doctors by department: %+v", err)
		return nil, err
	}

	return u.toListResponse(doctors), nil
}

func (u *doctorUsecase) GetDoctorByLicenseNumber(ctx context.Context, licenseNumber string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByLicenseNumber(ctx, u.db, licenseNumber)
	if err != nil {
		u.log.Warnf("Failed to find doctor by license number: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAvailableDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAvailable(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find available doctors: %+v", err)
		return nil, err
	}

	return u.toListResponse(doctors), nil
}

func (u *doctorUsecase) GetDoctorStatistics(ctx context.Context) (*dto.DoctorStatisticsResponse, error) {
	stats := &dto.DoctorStatisticsResponse{}

	var err error
	if stats.TotalDoctors, err = u.doctorRepo.Count(ctx, u.db); err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	if stats.AvailableDoctors, err = u.doctorRepo.CountByAvailability(ctx, u.db, true); err != nil {
		return nil, err
	}
	if stats.UnavailableDoctors, err = u.doctorRepo.CountByAvailability(ctx, u.db, false); err != nil {
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAllUnpaged(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load doctors for statistics: %+v", err)
		return nil, err
	}

	feeSum := decimal.Zero
	var feeCount int64
	for _, doctor := range doctors {
		if doctor.DepartmentID != nil {
			stats.DoctorsWithDepartment++
		}
		if doctor.ConsultationFee != nil {
			feeSum = feeSum.Add(*doctor.ConsultationFee)
			feeCount++
		}
	}
	if feeCount > 0 {
		stats.AverageConsultationFee = feeSum.DivRound(decimal.NewFromInt(feeCount), 2)
	}

	return stats, nil
}

func (u *doctorUsecase) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	return u.doctorRepo.ExistsByLicenseNumber(ctx, u.db, licenseNumber)
}

func (u *doctorUsecase) toListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}
