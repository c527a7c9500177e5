package models

// DashboardStats is the admin overview of the booking system.
type DashboardStats struct {
	Doctors               int64 `json:"doctors"`
	Slots                 int64 `json:"slots"`
	AvailableSlots        int   `json:"availableSlots"` // upcoming with a free seat
	ConfirmedAppointments int64 `json:"confirmedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
}

// ReconcileResult reports a manual occupancy repair run.
type ReconcileResult struct {
	CorrectedSlots int `json:"correctedSlots"`
}
