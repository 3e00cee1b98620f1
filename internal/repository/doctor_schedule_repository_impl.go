package repository

import (
	"context"
	"errors"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
	domainRepo "github.com/lokesh74503/Hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

// scheduleDayOrder sorts weekday strings in calendar order rather than
// alphabetically.
const scheduleDayOrder = "CASE day_of_week " +
	"WHEN 'MONDAY' THEN 1 WHEN 'TUESDAY' THEN 2 WHEN 'WEDNESDAY' THEN 3 " +
	"WHEN 'THURSDAY' THEN 4 WHEN 'FRIDAY' THEN 5 WHEN 'SATURDAY' THEN 6 " +
	"WHEN 'SUNDAY' THEN 7 END, start_time ASC"

func (r *doctorScheduleRepository) Create(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error {
	return db.WithContext(ctx).Create(schedule).Error
}

func (r *doctorScheduleRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.DoctorSchedule, error) {
	var schedule entity.DoctorSchedule
	err := db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *doctorScheduleRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int64) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order(scheduleDayOrder).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *doctorScheduleRepository) FindAvailableByDay(ctx context.Context, db *gorm.DB, dayOfWeek string) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.WithContext(ctx).
		Where("day_of_week = ? AND is_available = ?", dayOfWeek, true).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *doctorScheduleRepository) Update(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error {
	return db.WithContext(ctx).Omit("Doctor").Save(schedule).Error
}

func (r *doctorScheduleRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	affected := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DoctorSchedule{})
	return affected.RowsAffected, affected.Error
}
