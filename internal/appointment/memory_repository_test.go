package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_UpdateAppointmentStatus(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateAppointment(ctx, &Appointment{ID: "A001", Status: StatusConfirmed}))

	a, err := repo.UpdateAppointmentStatus(ctx, "A001", StatusConfirmed, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, a.Status)

	a, err = repo.UpdateAppointmentStatus(ctx, "A001", StatusConfirmed, StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	require.NotNil(t, a)
	assert.Equal(t, StatusCancelled, a.Status)

	_, err = repo.UpdateAppointmentStatus(ctx, "A001", StatusCancelled, StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = repo.UpdateAppointmentStatus(ctx, "A404", StatusConfirmed, StatusCancelled)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMemoryRepository_DuplicateIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreatePatient(ctx, &Patient{ID: "P001"}))
	assert.ErrorIs(t, repo.CreatePatient(ctx, &Patient{ID: "P001"}), ErrDuplicateID)

	require.NoError(t, repo.CreateDoctor(ctx, &Doctor{ID: "D001", Availability: NewAvailability(nil)}))
	assert.ErrorIs(t, repo.CreateDoctor(ctx, &Doctor{ID: "D001"}), ErrDuplicateID)
}

func TestMemoryRepository_AppointmentDetail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreatePatient(ctx, &Patient{ID: "P001", Person: Person{Name: "Joe"}, AppointmentIDs: []string{"A001"}}))
	require.NoError(t, repo.CreateDoctor(ctx, &Doctor{ID: "D001", Person: Person{Name: "Grey"}, Availability: NewAvailability(nil)}))
	require.NoError(t, repo.CreateAppointment(ctx, &Appointment{ID: "A001", PatientID: "P001", DoctorID: "D001", Status: StatusConfirmed}))

	detail, err := repo.GetAppointmentDetail(ctx, "A001")
	require.NoError(t, err)
	assert.Equal(t, "Joe", detail.Patient.Name)
	assert.Equal(t, "Grey", detail.Doctor.Name)

	list, err := repo.ListAppointmentsByPatient(ctx, "P001")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A001", list[0].ID)

	_, err = repo.GetAppointmentDetail(ctx, "A002")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestPerson_Summary(t *testing.T) {
	p := Person{Name: "Joe", Age: 30, Gender: "M"}
	assert.Equal(t, "Name: Joe, Age: 30, Gender: M", p.Summary())
}

func TestVerifyAvailability_DetectsOpenHeldSlot(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	slot := Slot{Date: "2025-06-01", Time: "09:00"}

	require.NoError(t, repo.CreateDoctor(ctx, &Doctor{ID: "D001", Availability: NewAvailability([]Slot{slot})}))
	require.NoError(t, repo.CreateAppointment(ctx, &Appointment{ID: "A001", DoctorID: "D001", Slot: slot, Status: StatusConfirmed}))

	assert.Error(t, VerifyAvailability(ctx, repo))
}
