package repository

import (
	"context"
	"fmt"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint64) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, notFound(err, "find doctor")
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).Order("id asc").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	return count, nil
}
