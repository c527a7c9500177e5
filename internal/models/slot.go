package models

import "time"

// AppointmentSlot is a bookable window of a doctor.
// Invariant: 0 <= CurrentBookings <= MaxCapacity.
type AppointmentSlot struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	DoctorID        uint64    `gorm:"not null;index" json:"doctorId"`
	StartTime       time.Time `gorm:"not null;index" json:"startTime"`
	EndTime         time.Time `gorm:"not null" json:"endTime"`
	MaxCapacity     int       `gorm:"not null" json:"maxCapacity"`
	CurrentBookings int       `gorm:"not null;default:0" json:"currentBookings"`
}

// IsAvailable reports whether at least one seat is left.
func (s *AppointmentSlot) IsAvailable() bool {
	return s.CurrentBookings < s.MaxCapacity
}

// CreateSlotInput is the body of POST /slots. Format: 2025-11-20T08:00:00Z
type CreateSlotInput struct {
	DoctorID    uint64    `json:"doctorId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	MaxCapacity int       `json:"maxCapacity" binding:"required,min=1"`
}

type SlotView struct {
	ID              uint64    `json:"id"`
	DoctorID        uint64    `json:"doctorId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	MaxCapacity     int       `json:"maxCapacity"`
	CurrentBookings int       `json:"currentBookings"`
	IsAvailable     bool      `json:"isAvailable"`
}

// View computes availability at read time.
func (s *AppointmentSlot) View() SlotView {
	return SlotView{
		ID:              s.ID,
		DoctorID:        s.DoctorID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
		IsAvailable:     s.IsAvailable(),
	}
}
