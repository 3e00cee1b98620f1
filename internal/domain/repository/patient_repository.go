package repository

import (
	"context"
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int, sortBy, sortDir string) ([]entity.Patient, int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)

	SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Patient, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error)
	FindByBloodGroup(ctx context.Context, db *gorm.DB, bloodGroup string) ([]entity.Patient, error)
	FindByGender(ctx context.Context, db *gorm.DB, gender string) ([]entity.Patient, error)
	FindByInsuranceProvider(ctx context.Context, db *gorm.DB, provider string) ([]entity.Patient, error)
	FindByInsuranceNumber(ctx context.Context, db *gorm.DB, insuranceNumber string) (*entity.Patient, error)
	FindByAllergiesContaining(ctx context.Context, db *gorm.DB, allergy string) ([]entity.Patient, error)
	FindByMedicalHistoryContaining(ctx context.Context, db *gorm.DB, condition string) ([]entity.Patient, error)
	FindByCreatedAtBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error)
	FindByBirthYear(ctx context.Context, db *gorm.DB, year int) ([]entity.Patient, error)
	FindByDateOfBirthBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error)
	FindAllUnpaged(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)

	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountByGender(ctx context.Context, db *gorm.DB, gender string) (int64, error)
	ExistsByUserID(ctx context.Context, db *gorm.DB, userID int64) (bool, error)
	ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error)
	ExistsByInsuranceNumber(ctx context.Context, db *gorm.DB, insuranceNumber string) (bool, error)
}
