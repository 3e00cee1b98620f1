package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor represents a practicing doctor linked to an external user account
type Doctor struct {
	ID              int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64            `gorm:"column:user_id;not null;index" json:"user_id"`
	FirstName       string           `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName        string           `gorm:"type:varchar(50);not null" json:"last_name"`
	Specialization  string           `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	DepartmentID    *int64           `gorm:"column:department_id" json:"department_id,omitempty"`
	LicenseNumber   string           `gorm:"column:license_number;type:varchar(50);uniqueIndex:doctors_license_number_key;not null" json:"license_number"`
	Phone           *string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address         string           `gorm:"type:text" json:"address,omitempty"`
	ExperienceYears *int             `gorm:"column:experience_years" json:"experience_years,omitempty"`
	ConsultationFee *decimal.Decimal `gorm:"column:consultation_fee;type:decimal(10,2)" json:"consultation_fee,omitempty"`
	IsAvailable     *bool            `gorm:"column:is_available;not null;default:true" json:"is_available"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
