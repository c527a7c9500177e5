package models

import "time"

// AppointmentStatus only ever moves Confirmed -> Cancelled.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a patient's booking against a slot. DoctorID is a snapshot
// of the slot's doctor taken at booking time, not a live join.
type Appointment struct {
	ID                uint64            `gorm:"primaryKey" json:"id"`
	AppointmentSlotID uint64            `gorm:"not null;index" json:"appointmentSlotId"`
	DoctorID          uint64            `gorm:"not null;index" json:"doctorId"`
	UserID            uint64            `gorm:"not null;index" json:"userId"`
	PatientName       string            `gorm:"size:100;not null" json:"patientName"`
	PatientPhone      string            `gorm:"size:20" json:"patientPhone"`
	PatientEmail      string            `gorm:"size:100" json:"patientEmail"`
	Reason            string            `gorm:"type:text" json:"reason"`
	Status            AppointmentStatus `gorm:"size:20;not null;index" json:"status"`
	BookedAt          time.Time         `gorm:"not null" json:"bookedAt"`
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// BookAppointmentInput is the body of POST /appointments.
type BookAppointmentInput struct {
	AppointmentSlotID uint64 `json:"appointmentSlotId" binding:"required"`
	PatientName       string `json:"patientName" binding:"required,max=100"`
	PatientPhone      string `json:"patientPhone" binding:"max=20"`
	PatientEmail      string `json:"patientEmail" binding:"omitempty,email,max=100"`
	Reason            string `json:"reason" binding:"max=1000"`
}

// AppointmentView is an appointment joined with its slot times and doctor
// name. Missing relations leave zero times and an empty name.
type AppointmentView struct {
	ID                uint64            `json:"id"`
	AppointmentSlotID uint64            `json:"appointmentSlotId"`
	DoctorID          uint64            `json:"doctorId"`
	DoctorName        string            `json:"doctorName"`
	UserID            uint64            `json:"userId"`
	StartTime         time.Time         `json:"startTime"`
	EndTime           time.Time         `json:"endTime"`
	PatientName       string            `json:"patientName"`
	PatientPhone      string            `json:"patientPhone"`
	PatientEmail      string            `json:"patientEmail"`
	Reason            string            `json:"reason"`
	Status            AppointmentStatus `json:"status"`
	BookedAt          time.Time         `json:"bookedAt"`
}
