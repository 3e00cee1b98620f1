package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
	domainRepo "github.com/lokesh74503/Hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

// patientSortColumns maps accepted sortBy values to columns. Anything else
// falls back to the primary key so callers cannot inject arbitrary SQL.
var patientSortColumns = map[string]string{
	"id":          "id",
	"userId":      "user_id",
	"firstName":   "first_name",
	"lastName":    "last_name",
	"dateOfBirth": "date_of_birth",
	"bloodGroup":  "blood_group",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

func orderClause(columns map[string]string, sortBy, sortDir string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = "id"
	}
	if strings.EqualFold(sortDir, "desc") {
		return column + " DESC"
	}
	return column + " ASC"
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB, limit, offset int, sortBy, sortDir string) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	if err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).
		Order(orderClause(patientSortColumns, sortBy, sortDir)).
		Limit(limit).
		Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	affected := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return affected.RowsAffected, affected.Error
}

func (r *patientRepository) SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Patient, error) {
	var patients []entity.Patient
	pattern := "%" + name + "%"
	err := db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByBloodGroup(ctx context.Context, db *gorm.DB, bloodGroup string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("blood_group = ?", bloodGroup).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByGender(ctx context.Context, db *gorm.DB, gender string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("gender = ?", gender).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByInsuranceProvider(ctx context.Context, db *gorm.DB, provider string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("insurance_provider = ?", provider).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByInsuranceNumber(ctx context.Context, db *gorm.DB, insuranceNumber string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("insurance_number = ?", insuranceNumber).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByAllergiesContaining(ctx context.Context, db *gorm.DB, allergy string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("allergies IS NOT NULL AND allergies ILIKE ?", "%"+allergy+"%").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByMedicalHistoryContaining(ctx context.Context, db *gorm.DB, condition string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("medical_history IS NOT NULL AND medical_history ILIKE ?", "%"+condition+"%").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByCreatedAtBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", start, end).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByBirthYear(ctx context.Context, db *gorm.DB, year int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM date_of_birth) = ?", year).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByDateOfBirthBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("date_of_birth BETWEEN ? AND ?", start, end).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllUnpaged(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

func (r *patientRepository) CountByGender(ctx context.Context, db *gorm.DB, gender string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("gender = ?", gender).Count(&total).Error
	return total, err
}

func (r *patientRepository) ExistsByUserID(ctx context.Context, db *gorm.DB, userID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) ExistsByInsuranceNumber(ctx context.Context, db *gorm.DB, insuranceNumber string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("insurance_number = ?", insuranceNumber).Count(&count).Error
	return count > 0, err
}
