package usecase

import (
	"context"
	"errors"
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
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
)

const timeOfDayLayout = "15:04"

type DoctorScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, id int64) (*dto.ScheduleResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID int64) (*dto.ScheduleListResponse, error)
	GetAvailableSchedulesByDay(ctx context.Context, dayOfWeek string) (*dto.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	doctorRepo   repository.DoctorRepository
	events       service.EventPublisher
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorRepository,
	events service.EventPublisher,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		events:       events,
	}
}

// validateTimeWindow parses both times and rejects empty or inverted windows.
func validateTimeWindow(startTime, endTime string) error {
	start, err := time.Parse(timeOfDayLayout, startTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	end, err := time.Parse(timeOfDayLayout, endTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}
	return nil
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := validateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	// Validate doctor exists
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule := &entity.DoctorSchedule{
		DoctorID:    req.DoctorID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}

	if err := u.scheduleRepo.Create(ctx, tx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Publish(ctx, service.DoctorEventsChannel, service.LifecycleToken("SCHEDULE", service.ActionCreated, schedule.ID))

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, id int64) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID int64) (*dto.ScheduleListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	responses := converter.SchedulesToResponses(schedules)
	return &dto.ScheduleListResponse{
		Schedules: responses,
		Total:     len(responses),
	}, nil
}

func (u *doctorScheduleUsecase) GetAvailableSchedulesByDay(ctx context.Context, dayOfWeek string) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAvailableByDay(ctx, u.db, dayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to find schedules by day: %+v", err)
		return nil, err
	}

	responses := converter.SchedulesToResponses(schedules)
	return &dto.ScheduleListResponse{
		Schedules: responses,
		Total:     len(responses),
	}, nil
}

func (u *doctorScheduleUsecase) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := validateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	schedule.DayOfWeek = req.DayOfWeek
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	if req.IsAvailable != nil {
		schedule.IsAvailable = req.IsAvailable
	}

	if err := u.scheduleRepo.Update(ctx, tx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Publish(ctx, service.DoctorEventsChannel, service.LifecycleToken("SCHEDULE", service.ActionUpdated, schedule.ID))

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) DeleteSchedule(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.scheduleRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrScheduleNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.events.Publish(ctx, service.DoctorEventsChannel, service.LifecycleToken("SCHEDULE", service.ActionDeleted, id))

	return nil
}
