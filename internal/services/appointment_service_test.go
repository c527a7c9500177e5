package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAppointment_ConcurrentRequestsNeverOverbook(t *testing.T) {
	f := newFixture(t)
	doctor := f.doctor(t, "Dr. Strange", "strange@example.com")
	slot := f.slot(t, doctor.ID, now.Add(24*time.Hour), 5)

	const n = 20
	var (
		wg           sync.WaitGroup
		succeeded    int32
		conflicts    int32
		unexpectedMu sync.Mutex
		unexpected   []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(user uint64) {
			defer wg.Done()
			_, err := f.book(user, slot.ID, "Patient")
			switch {
			case err == nil:
				atomic.AddInt32(&succeeded, 1)
			case errors.Is(err, ErrConflict):
				atomic.AddInt32(&conflicts, 1)
			default:
				unexpectedMu.Lock()
				unexpected = append(unexpected, err)
				unexpectedMu.Unlock()
			}
		}(uint64(i + 1))
	}
	wg.Wait()

	require.Empty(t, unexpected)
	assert.EqualValues(t, 5, succeeded)
	assert.EqualValues(t, n-5, conflicts)
	assert.Equal(t, 5, f.occupancy(t, slot.ID))

	counts, err := f.store.Appointments().CountConfirmedBySlot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, counts[slot.ID])
}

func TestBookAppointment_MissingSlotWritesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.book(1, 999, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := f.appointments.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestBookAppointment_FullSlot(t *testing.T) {
	f := newFixture(t)
	doctor := f.doctor(t, "Dr. One", "one@example.com")
	slot := f.slot(t, doctor.ID, now.Add(time.Hour), 1)

	_, err := f.book(1, slot.ID, "First")
	require.NoError(t, err)

	_, err = f.book(2, slot.ID, "Second")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "no availability in this slot", err.Error())
	assert.Equal(t, 1, f.occupancy(t, slot.ID))
}

func TestBookAppointment_EnrichedView(t *testing.T) {
	f := newFixture(t)
	doctor := f.doctor(t, "Dr. Who", "who@example.com")
	start := now.Add(48 * time.Hour)
	slot := f.slot(t, doctor.ID, start, 2)

	view, err := f.book(7, slot.ID, "Clara")
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Equal(t, slot.ID, view.AppointmentSlotID)
	assert.Equal(t, doctor.ID, view.DoctorID)
	assert.Equal(t, "Dr. Who", view.DoctorName)
	assert.Equal(t, uint64(7), view.UserID)
	assert.Equal(t, "Clara", view.PatientName)
	assert.Equal(t, models.StatusConfirmed, view.Status)
	assert.True(t, view.StartTime.Equal(start))
	assert.True(t, view.EndTime.Equal(start.Add(30*time.Minute)))
	assert.True(t, view.BookedAt.Equal(now))

	got, err := f.appointments.GetAppointment(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Who", got.DoctorName)
}

func TestCancelAppointment_DecrementsOnce(t *testing.T) {
	f := newFixture(t)
	doctor := f.doctor(t, "Dr. No", "no@example.com")
	slot := f.slot(t, doctor.ID, now.Add(time.Hour), 3)

	a, err := f.book(1, slot.ID, "A")
	require.NoError(t, err)
	_, err = f.book(2, slot.ID, "B")
	require.NoError(t, err)
	require.Equal(t, 2, f.occupancy(t, slot.ID))

	cancelled, err := f.appointments.CancelAppointment(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, 1, f.occupancy(t, slot.ID))

	again, err := f.appointments.CancelAppointment(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, again.Status)
	assert.Equal(t, 1, f.occupancy(t, slot.ID), "second cancel must not release another seat")
}

func TestCancelAppointment_Concurrent(t *testing.T) {
	f := newFixture(t)
	doctor := f.doctor(t, "Dr. Race", "race@example.com")
	slot := f.slot(t, doctor.ID, now.Add(time.Hour), 4)

	a, err := f.book(1, slot.ID, "A")
	require.NoError(t, err)
	_, err = f.book(2, slot.ID, "B")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.appointments.CancelAppointment(context.Background(), a.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.occupancy(t, slot.ID))
}

func TestCancelAppointment_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.appointments.CancelAppointment(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentView_DegradesOnMissingRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	orphan := &models.Appointment{
		AppointmentSlotID: 777,
		DoctorID:          888,
		UserID:            3,
		PatientName:       "Ghost",
		Status:            models.StatusConfirmed,
		BookedAt:          now,
	}
	require.NoError(t, f.store.Appointments().Create(ctx, orphan))

	view, err := f.appointments.GetAppointment(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Empty(t, view.DoctorName)
	assert.True(t, view.StartTime.IsZero())
	assert.True(t, view.EndTime.IsZero())
	assert.Equal(t, "Ghost", view.PatientName)
}

func TestCapacityRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := f.doctor(t, "Dr. Three", "three@example.com")
	slot := f.slot(t, doctor.ID, now.Add(time.Hour), 3)

	var booked []*models.AppointmentView
	for i := 1; i <= 3; i++ {
		a, err := f.book(uint64(i), slot.ID, "P")
		require.NoError(t, err)
		booked = append(booked, a)
	}

	got, err := f.slots.GetSlot(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentBookings)
	assert.False(t, got.IsAvailable)

	_, err = f.book(4, slot.ID, "P")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.appointments.CancelAppointment(ctx, booked[1].ID)
	require.NoError(t, err)

	got, err = f.slots.GetSlot(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentBookings)
	assert.True(t, got.IsAvailable)

	_, err = f.book(4, slot.ID, "P")
	assert.NoError(t, err)
	assert.Equal(t, 3, f.occupancy(t, slot.ID))
}

func TestBookingScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.doctor(t, "Dr. Scenario", "scenario@example.com")
	slot := f.slot(t, doctor.ID, now.Add(24*time.Hour), 2)

	u1, err := f.auth.Register(ctx, models.RegisterInput{Email: "u1@example.com", Password: "password1"})
	require.NoError(t, err)
	u2, err := f.auth.Register(ctx, models.RegisterInput{Email: "u2@example.com", Password: "password2"})
	require.NoError(t, err)

	a1, err := f.book(u1.UserID, slot.ID, "User One")
	require.NoError(t, err)
	_, err = f.book(u2.UserID, slot.ID, "User Two")
	require.NoError(t, err)

	s, err := f.slots.GetSlot(ctx, slot.ID)
	require.NoError(t, err)
	assert.False(t, s.IsAvailable)

	available, err := f.slots.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)

	_, err = f.appointments.CancelAppointment(ctx, a1.ID)
	require.NoError(t, err)

	available, err = f.slots.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, slot.ID, available[0].ID)

	mine, err := f.appointments.ListByUser(ctx, u1.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.StatusCancelled, mine[0].Status)

	byDoctor, err := f.appointments.ListByDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, byDoctor, 2)
}
