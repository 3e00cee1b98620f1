package repository

import (
	"context"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*entity.Doctor, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int, sortBy, sortDir string) ([]entity.Doctor, int64, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)

	SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Doctor, error)
	FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]entity.Doctor, error)
	FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID int64) ([]entity.Doctor, error)
	FindByLicenseNumber(ctx context.Context, db *gorm.DB, licenseNumber string) (*entity.Doctor, error)
	FindAvailable(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	FindAllUnpaged(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)

	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountByAvailability(ctx context.Context, db *gorm.DB, available bool) (int64, error)
	ExistsByLicenseNumber(ctx context.Context, db *gorm.DB, licenseNumber string) (bool, error)
}
