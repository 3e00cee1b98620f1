package entity

import (
	"time"
)

// DoctorSchedule represents a weekly recurring availability window for a doctor
type DoctorSchedule struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    int64     `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	DayOfWeek   string    `gorm:"column:day_of_week;type:varchar(10);not null" json:"day_of_week"`
	StartTime   string    `gorm:"column:start_time;type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"column:end_time;type:time;not null" json:"end_time"`
	IsAvailable *bool     `gorm:"column:is_available;not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// Days of the week accepted by schedule operations
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)
