package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"
)

type DoctorService struct {
	store repository.Store
}

func NewDoctorService(store repository.Store) *DoctorService {
	return &DoctorService{store: store}
}

// CreateDoctor provisions the doctor's login account and profile together.
func (s *DoctorService) CreateDoctor(ctx context.Context, input models.CreateDoctorInput) (*models.DoctorView, error) {
	email := normalizeEmail(input.Email)

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	doctor := &models.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
		Phone:          input.Phone,
		Email:          email,
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		user := &models.User{Email: email, PasswordHash: hash, Role: models.RoleDoctor}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		doctor.UserID = user.ID
		return tx.Doctors().Create(ctx, doctor)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, newError(ErrConflict, "email already registered")
		}
		return nil, err
	}

	log.Printf("[Doctor] doctor %d created", doctor.ID)
	view := doctor.View()
	return &view, nil
}

func (s *DoctorService) GetDoctor(ctx context.Context, id uint64) (*models.DoctorView, error) {
	doctor, err := s.store.Doctors().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "doctor not found")
		}
		return nil, err
	}
	view := doctor.View()
	return &view, nil
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]models.DoctorView, error) {
	doctors, err := s.store.Doctors().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.DoctorView, 0, len(doctors))
	for i := range doctors {
		views = append(views, doctors[i].View())
	}
	return views, nil
}
