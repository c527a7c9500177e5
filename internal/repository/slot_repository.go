package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"

	"gorm.io/gorm"
)

type slotRepository struct {
	db *gorm.DB
}

func (r *slotRepository) Create(ctx context.Context, slot *models.AppointmentSlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return fmt.Errorf("create slot: %w", err)
	}
	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id uint64) (*models.AppointmentSlot, error) {
	var slot models.AppointmentSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, notFound(err, "find slot")
	}
	return &slot, nil
}

func (r *slotRepository) FindByDoctorID(ctx context.Context, doctorID uint64) ([]models.AppointmentSlot, error) {
	var slots []models.AppointmentSlot
	if err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("start_time asc").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("list slots by doctor: %w", err)
	}
	return slots, nil
}

func (r *slotRepository) FindAvailable(ctx context.Context, after time.Time) ([]models.AppointmentSlot, error) {
	var slots []models.AppointmentSlot
	err := r.db.WithContext(ctx).
		Where("current_bookings < max_capacity AND start_time > ?", after).
		Order("start_time asc").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	return slots, nil
}

func (r *slotRepository) FindAll(ctx context.Context) ([]models.AppointmentSlot, error) {
	var slots []models.AppointmentSlot
	if err := r.db.WithContext(ctx).Order("id asc").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (r *slotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AppointmentSlot{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count slots: %w", err)
	}
	return count, nil
}

// The check and the write are one statement, so two requests racing for the
// last seat cannot both win.
func (r *slotRepository) IncrementBookings(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where("id = ? AND current_bookings < max_capacity", id).
		UpdateColumn("current_bookings", gorm.Expr("current_bookings + ?", 1))
	if res.Error != nil {
		return false, fmt.Errorf("increment slot bookings: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *slotRepository) DecrementBookings(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where("id = ? AND current_bookings > 0", id).
		UpdateColumn("current_bookings", gorm.Expr("current_bookings - ?", 1))
	if res.Error != nil {
		return false, fmt.Errorf("decrement slot bookings: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *slotRepository) CompareAndSetBookings(ctx context.Context, id uint64, expected, value int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where("id = ? AND current_bookings = ?", id, expected).
		UpdateColumn("current_bookings", value)
	if res.Error != nil {
		return false, fmt.Errorf("set slot bookings: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
