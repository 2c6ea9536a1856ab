package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hackgods/hospital-booking-ledger/internal/appointment"
	"github.com/hackgods/hospital-booking-ledger/internal/config"
	"github.com/hackgods/hospital-booking-ledger/internal/metrics"
)

var start = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestSlots(t *testing.T) {
	slots := Slots(NewFaker(42), 12, start)
	require.Len(t, slots, 12)

	seen := make(map[appointment.Slot]bool)
	for _, s := range slots {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true

		day, err := time.Parse("2006-01-02", s.Date)
		require.NoError(t, err)
		assert.True(t, day.After(start))
		assert.Contains(t, slotTimes, s.Time)
	}
}

func TestSlots_Deterministic(t *testing.T) {
	assert.Equal(t, Slots(NewFaker(7), 5, start), Slots(NewFaker(7), 5, start))
}

func TestDoctorsAndPatients(t *testing.T) {
	ctx := context.Background()
	repo := appointment.NewMemoryRepository()
	svc := appointment.NewService(repo, appointment.NewIDIssuer(), config.Default(), metrics.NewCollector("test"), zap.NewNop())
	faker := NewFaker(42)

	doctors, err := Doctors(ctx, svc, faker, 3, 4, start)
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	for i, d := range doctors {
		assert.Equal(t, []string{"D001", "D002", "D003"}[i], d.ID)
		assert.NotEmpty(t, d.Name)
		assert.Contains(t, specialities, d.Speciality)
		assert.Equal(t, 4, d.Availability.Len())
		assert.GreaterOrEqual(t, d.Age, 28)
	}

	patients, err := Patients(ctx, svc, faker, 5)
	require.NoError(t, err)
	require.Len(t, patients, 5)
	assert.Equal(t, "P005", patients[4].ID)

	stored, err := repo.ListPatients(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 5)
}
