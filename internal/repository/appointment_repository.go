package repository

import (
	"context"
	"fmt"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint64) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, notFound(err, "find appointment")
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByUserID(ctx context.Context, userID uint64) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("booked_at desc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments by user: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uint64) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("booked_at desc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments by doctor: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) TransitionStatus(ctx context.Context, id uint64, from, to models.AppointmentStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		UpdateColumn("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("transition appointment status: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *appointmentRepository) CountConfirmedBySlot(ctx context.Context) (map[uint64]int, error) {
	var rows []struct {
		AppointmentSlotID uint64
		Total             int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointment_slot_id, COUNT(*) AS total").
		Where("status = ?", models.StatusConfirmed).
		Group("appointment_slot_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count confirmed appointments: %w", err)
	}

	counts := make(map[uint64]int, len(rows))
	for _, row := range rows {
		counts[row.AppointmentSlotID] = row.Total
	}
	return counts, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count appointments by status: %w", err)
	}
	return count, nil
}
