package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
)

var errSlotFull = newError(ErrConflict, "no availability in this slot")

type AppointmentService struct {
	store repository.Store
	now   func() time.Time
}

// NewAppointmentService builds the appointment manager. A nil clock means time.Now.
func NewAppointmentService(store repository.Store, now func() time.Time) *AppointmentService {
	if now == nil {
		now = time.Now
	}
	return &AppointmentService{store: store, now: now}
}

// BookAppointment takes one seat of the slot for the user. The seat and the
// appointment row are written in a single transaction.
func (s *AppointmentService) BookAppointment(ctx context.Context, userID uint64, input models.BookAppointmentInput) (*models.AppointmentView, error) {
	slot, err := s.store.Slots().FindByID(ctx, input.AppointmentSlotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "appointment slot not found")
		}
		return nil, err
	}
	if !slot.IsAvailable() {
		return nil, errSlotFull
	}

	appointment := &models.Appointment{
		AppointmentSlotID: slot.ID,
		DoctorID:          slot.DoctorID,
		UserID:            userID,
		PatientName:       input.PatientName,
		PatientPhone:      input.PatientPhone,
		PatientEmail:      input.PatientEmail,
		Reason:            input.Reason,
		Status:            models.StatusConfirmed,
		BookedAt:          s.now().UTC(),
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		taken, err := tx.Slots().IncrementBookings(ctx, slot.ID)
		if err != nil {
			return err
		}
		if !taken {
			return errSlotFull
		}
		return tx.Appointments().Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Booking] appointment %d booked on slot %d by user %d", appointment.ID, slot.ID, userID)
	return s.toView(ctx, appointment)
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id uint64) (*models.AppointmentView, error) {
	appointment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, appointment)
}

func (s *AppointmentService) ListByUser(ctx context.Context, userID uint64) ([]models.AppointmentView, error) {
	appointments, err := s.store.Appointments().FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, appointments)
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID uint64) ([]models.AppointmentView, error) {
	appointments, err := s.store.Appointments().FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, appointments)
}

// CancelAppointment releases the seat of a confirmed appointment. Cancelling
// an already cancelled appointment changes nothing and returns it as is.
func (s *AppointmentService) CancelAppointment(ctx context.Context, id uint64) (*models.AppointmentView, error) {
	appointment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return s.toView(ctx, appointment)
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		changed, err := tx.Appointments().TransitionStatus(ctx, id, models.StatusConfirmed, models.StatusCancelled)
		if err != nil || !changed {
			return err
		}
		released, err := tx.Slots().DecrementBookings(ctx, appointment.AppointmentSlotID)
		if err != nil {
			return err
		}
		if !released {
			log.Printf("[Booking] slot %d had no booking to release for appointment %d", appointment.AppointmentSlotID, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Status = models.StatusCancelled
	log.Printf("[Booking] appointment %d cancelled", id)
	return s.toView(ctx, appointment)
}

func (s *AppointmentService) find(ctx context.Context, id uint64) (*models.Appointment, error) {
	appointment, err := s.store.Appointments().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "appointment not found")
		}
		return nil, err
	}
	return appointment, nil
}

// toView joins slot times and doctor name. A missing slot or doctor leaves
// the fields zero.
func (s *AppointmentService) toView(ctx context.Context, a *models.Appointment) (*models.AppointmentView, error) {
	view := models.AppointmentView{
		ID:                a.ID,
		AppointmentSlotID: a.AppointmentSlotID,
		DoctorID:          a.DoctorID,
		UserID:            a.UserID,
		PatientName:       a.PatientName,
		PatientPhone:      a.PatientPhone,
		PatientEmail:      a.PatientEmail,
		Reason:            a.Reason,
		Status:            a.Status,
		BookedAt:          a.BookedAt,
	}

	slot, err := s.store.Slots().FindByID(ctx, a.AppointmentSlotID)
	switch {
	case err == nil:
		view.StartTime = slot.StartTime
		view.EndTime = slot.EndTime
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	doctor, err := s.store.Doctors().FindByID(ctx, a.DoctorID)
	switch {
	case err == nil:
		view.DoctorName = doctor.Name
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	return &view, nil
}

func (s *AppointmentService) toViews(ctx context.Context, appointments []models.Appointment) ([]models.AppointmentView, error) {
	views := make([]models.AppointmentView, 0, len(appointments))
	for i := range appointments {
		view, err := s.toView(ctx, &appointments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}
