package repository

import (
	"context"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	Create(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.DoctorSchedule, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int64) ([]entity.DoctorSchedule, error)
	FindAvailableByDay(ctx context.Context, db *gorm.DB, dayOfWeek string) ([]entity.DoctorSchedule, error)
	Update(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
