package repository

import (
	"context"
	"errors"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"
	domainRepo "github.com/lokesh74503/Hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

var doctorSortColumns = map[string]string{
	"id":              "id",
	"userId":          "user_id",
	"firstName":       "first_name",
	"lastName":        "last_name",
	"specialization":  "specialization",
	"licenseNumber":   "license_number",
	"experienceYears": "experience_years",
	"consultationFee": "consultation_fee",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB, limit, offset int, sortBy, sortDir string) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	if err := db.WithContext(ctx).Model(&entity.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).
		Order(orderClause(doctorSortColumns, sortBy, sortDir)).
		Limit(limit).
		Offset(offset).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Omit("Schedules").Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	affected := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return affected.RowsAffected, affected.Error
}

func (r *doctorRepository) SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	pattern := "%" + name + "%"
	err := db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).
		Where("specialization ILIKE ?", "%"+specialization+"%").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID int64) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Where("department_id = ?", departmentID).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByLicenseNumber(ctx context.Context, db *gorm.DB, licenseNumber string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("license_number = ?", licenseNumber).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAvailable(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Where("is_available = ?", true).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAllUnpaged(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

func (r *doctorRepository) CountByAvailability(ctx context.Context, db *gorm.DB, available bool) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Where("is_available = ?", available).Count(&total).Error
	return total, err
}

func (r *doctorRepository) ExistsByLicenseNumber(ctx context.Context, db *gorm.DB, licenseNumber string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Where("license_number = ?", licenseNumber).Count(&count).Error
	return count > 0, err
}
