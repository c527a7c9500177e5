package services

import (
	"context"
	"testing"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/testutil"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

type fixture struct {
	store        repository.Store
	auth         *AuthService
	doctors      *DoctorService
	slots        *SlotService
	appointments *AppointmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewStore(testutil.NewDB(t))
	tokens := utils.NewTokenManager("test-secret", "doctors-api", "clients", time.Hour)
	return &fixture{
		store:        store,
		auth:         NewAuthService(store, tokens),
		doctors:      NewDoctorService(store),
		slots:        NewSlotService(store, clock),
		appointments: NewAppointmentService(store, clock),
	}
}

func (f *fixture) doctor(t *testing.T, name, email string) *models.DoctorView {
	t.Helper()
	d, err := f.doctors.CreateDoctor(context.Background(), models.CreateDoctorInput{
		Name:           name,
		Specialization: "General",
		Email:          email,
		Password:       "doctor-pass",
	})
	require.NoError(t, err)
	return d
}

func (f *fixture) slot(t *testing.T, doctorID uint64, start time.Time, capacity int) *models.SlotView {
	t.Helper()
	s, err := f.slots.CreateSlot(context.Background(), models.CreateSlotInput{
		DoctorID:    doctorID,
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		MaxCapacity: capacity,
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) book(userID, slotID uint64, patient string) (*models.AppointmentView, error) {
	return f.appointments.BookAppointment(context.Background(), userID, models.BookAppointmentInput{
		AppointmentSlotID: slotID,
		PatientName:       patient,
		PatientEmail:      "patient@example.com",
		Reason:            "checkup",
	})
}

func (f *fixture) occupancy(t *testing.T, slotID uint64) int {
	t.Helper()
	s, err := f.store.Slots().FindByID(context.Background(), slotID)
	require.NoError(t, err)
	return s.CurrentBookings
}
