package entity

import (
	"time"
)

// Patient represents a patient record linked to an external user account
type Patient struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            int64     `gorm:"column:user_id;uniqueIndex:patients_user_id_key;not null" json:"user_id"`
	FirstName         string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName          string    `gorm:"type:varchar(50);not null" json:"last_name"`
	DateOfBirth       time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender            *string   `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Phone             *string   `gorm:"type:varchar(20);uniqueIndex:patients_phone_key" json:"phone,omitempty"`
	Address           string    `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact  *string   `gorm:"type:varchar(20)" json:"emergency_contact,omitempty"`
	BloodGroup        string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Allergies         string    `gorm:"type:text" json:"allergies,omitempty"`
	MedicalHistory    string    `gorm:"type:text" json:"medical_history,omitempty"`
	InsuranceProvider string    `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsuranceNumber   *string   `gorm:"type:varchar(50);uniqueIndex:patients_insurance_number_key" json:"insurance_number,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)
