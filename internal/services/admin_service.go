package services

import (
	"context"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
)

type AdminService struct {
	store repository.Store
	slots *SlotService
}

func NewAdminService(store repository.Store, slots *SlotService) *AdminService {
	return &AdminService{store: store, slots: slots}
}

func (s *AdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)

	if stats.Doctors, err = s.store.Doctors().Count(ctx); err != nil {
		return nil, err
	}
	if stats.Slots, err = s.store.Slots().Count(ctx); err != nil {
		return nil, err
	}
	if stats.ConfirmedAppointments, err = s.store.Appointments().CountByStatus(ctx, models.StatusConfirmed); err != nil {
		return nil, err
	}
	if stats.CancelledAppointments, err = s.store.Appointments().CountByStatus(ctx, models.StatusCancelled); err != nil {
		return nil, err
	}

	available, err := s.slots.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	stats.AvailableSlots = len(available)

	return &stats, nil
}

// Reconcile runs the occupancy repair on demand.
func (s *AdminService) Reconcile(ctx context.Context) (*models.ReconcileResult, error) {
	fixed, err := s.slots.ReconcileOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ReconcileResult{CorrectedSlots: fixed}, nil
}
