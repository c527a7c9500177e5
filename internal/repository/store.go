// Package repository is the persistence gateway: point lookups, lookups by
// foreign key, inserts and the conditional updates that keep slot occupancy
// consistent.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id or key matches no row.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	FindByID(ctx context.Context, id uint64) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Count(ctx context.Context) (int64, error)
}

type SlotRepository interface {
	Create(ctx context.Context, slot *models.AppointmentSlot) error
	FindByID(ctx context.Context, id uint64) (*models.AppointmentSlot, error)
	FindByDoctorID(ctx context.Context, doctorID uint64) ([]models.AppointmentSlot, error)
	// FindAvailable returns slots with a free seat starting strictly after t.
	FindAvailable(ctx context.Context, after time.Time) ([]models.AppointmentSlot, error)
	FindAll(ctx context.Context) ([]models.AppointmentSlot, error)
	Count(ctx context.Context) (int64, error)
	// IncrementBookings takes one seat only if one is left. It reports false
	// when the slot is full or missing.
	IncrementBookings(ctx context.Context, id uint64) (bool, error)
	// DecrementBookings frees one seat, never going below zero.
	DecrementBookings(ctx context.Context, id uint64) (bool, error)
	// CompareAndSetBookings overwrites the counter only while it still holds expected.
	CompareAndSetBookings(ctx context.Context, id uint64, expected, value int) (bool, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint64) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID uint64) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uint64) ([]models.Appointment, error)
	// TransitionStatus moves an appointment from one status to another and
	// reports whether this call performed the transition.
	TransitionStatus(ctx context.Context, id uint64, from, to models.AppointmentStatus) (bool, error)
	// CountConfirmedBySlot maps slot id to its number of confirmed appointments.
	CountConfirmedBySlot(ctx context.Context) (map[uint64]int, error)
	CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error)
}

// Store groups the repositories over one connection or transaction.
type Store interface {
	Users() UserRepository
	Doctors() DoctorRepository
	Slots() SlotRepository
	Appointments() AppointmentRepository
	// Transaction runs fn against a Store bound to a single database
	// transaction. Returning an error from fn rolls it back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore builds the gorm-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository               { return &userRepository{db: s.db} }
func (s *gormStore) Doctors() DoctorRepository           { return &doctorRepository{db: s.db} }
func (s *gormStore) Slots() SlotRepository               { return &slotRepository{db: s.db} }
func (s *gormStore) Appointments() AppointmentRepository { return &appointmentRepository{db: s.db} }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// notFound maps gorm's sentinel onto ErrNotFound and wraps the rest.
func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
