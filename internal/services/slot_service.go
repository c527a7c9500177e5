package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
)

type SlotService struct {
	store repository.Store
	now   func() time.Time
}

// NewSlotService builds the slot manager. A nil clock means time.Now.
func NewSlotService(store repository.Store, now func() time.Time) *SlotService {
	if now == nil {
		now = time.Now
	}
	return &SlotService{store: store, now: now}
}

func (s *SlotService) CreateSlot(ctx context.Context, input models.CreateSlotInput) (*models.SlotView, error) {
	if _, err := s.store.Doctors().FindByID(ctx, input.DoctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "doctor not found")
		}
		return nil, err
	}

	slot := &models.AppointmentSlot{
		DoctorID:        input.DoctorID,
		StartTime:       input.StartTime.UTC(),
		EndTime:         input.EndTime.UTC(),
		MaxCapacity:     input.MaxCapacity,
		CurrentBookings: 0,
	}
	if err := s.store.Slots().Create(ctx, slot); err != nil {
		return nil, err
	}

	view := slot.View()
	return &view, nil
}

func (s *SlotService) GetSlot(ctx context.Context, id uint64) (*models.SlotView, error) {
	slot, err := s.store.Slots().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "appointment slot not found")
		}
		return nil, err
	}
	view := slot.View()
	return &view, nil
}

// ListByDoctor returns every slot of the doctor, past ones included.
func (s *SlotService) ListByDoctor(ctx context.Context, doctorID uint64) ([]models.SlotView, error) {
	slots, err := s.store.Slots().FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return slotViews(slots), nil
}

// ListAvailable returns slots with a free seat that start after now.
func (s *SlotService) ListAvailable(ctx context.Context) ([]models.SlotView, error) {
	slots, err := s.store.Slots().FindAvailable(ctx, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return slotViews(slots), nil
}

// ReconcileOccupancy recounts every slot's bookings from its confirmed
// appointments and repairs the counters that drifted. It returns how many
// slots were corrected.
func (s *SlotService) ReconcileOccupancy(ctx context.Context) (int, error) {
	slots, err := s.store.Slots().FindAll(ctx)
	if err != nil {
		return 0, err
	}
	counts, err := s.store.Appointments().CountConfirmedBySlot(ctx)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for _, slot := range slots {
		want := counts[slot.ID]
		if want > slot.MaxCapacity {
			want = slot.MaxCapacity
		}
		if want == slot.CurrentBookings {
			continue
		}

		// A booking or cancel that lands in between makes the swap fail;
		// the next run picks the slot up again.
		ok, err := s.store.Slots().CompareAndSetBookings(ctx, slot.ID, slot.CurrentBookings, want)
		if err != nil {
			return fixed, fmt.Errorf("reconcile slot %d: %w", slot.ID, err)
		}
		if !ok {
			continue
		}
		log.Printf("[Reconcile] slot %d bookings %d -> %d", slot.ID, slot.CurrentBookings, want)
		fixed++
	}
	return fixed, nil
}

func slotViews(slots []models.AppointmentSlot) []models.SlotView {
	views := make([]models.SlotView, 0, len(slots))
	for i := range slots {
		views = append(views, slots[i].View())
	}
	return views
}
