package appointment

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/hospital-booking-ledger/internal/config"
)

func TestBillTotal(t *testing.T) {
	tests := []struct {
		name       string
		additional float64
		want       float64
	}{
		{name: "no extras", additional: 0, want: 5000},
		{name: "lab work", additional: 1500.5, want: 6500.5},
		{name: "negative passes through", additional: -700, want: 4300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillTotal(config.DefaultBaseFee, tt.additional))
		})
	}
}

func TestGenerateBill(t *testing.T) {
	svc, _, collector := newTestService(t)
	ctx := context.Background()
	slot := Slot{Date: "2025-06-01", Time: "09:00"}
	d := registerDoctor(t, svc, slot)
	p := registerPatient(t, svc, "Joe")

	appt, err := svc.BookAppointment(ctx, BookAppointmentCommand{PatientID: p.ID, DoctorID: d.ID, Date: slot.Date, Time: slot.Time})
	require.NoError(t, err)

	bill, err := svc.GenerateBill(ctx, appt.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, &Bill{
		AppointmentID:     "A001",
		PatientName:       "Joe",
		DoctorName:        "Grey",
		BaseFee:           5000,
		AdditionalCharges: 250,
		Total:             5250,
	}, bill)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.BillsGeneratedTotal))
}

func TestGenerateBill_CancelledAppointmentStillBilled(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	slot := Slot{Date: "2025-06-01", Time: "09:00"}
	d := registerDoctor(t, svc, slot)
	p := registerPatient(t, svc, "Joe")

	appt, err := svc.BookAppointment(ctx, BookAppointmentCommand{PatientID: p.ID, DoctorID: d.ID, Date: slot.Date, Time: slot.Time})
	require.NoError(t, err)
	_, err = svc.CancelAppointment(ctx, appt.ID)
	require.NoError(t, err)

	bill, err := svc.GenerateBill(ctx, appt.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(5000), bill.Total)
}

func TestGenerateBill_UnknownAppointment(t *testing.T) {
	svc, _, collector := newTestService(t)

	_, err := svc.GenerateBill(context.Background(), "A001", 100)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.BillsGeneratedTotal))
}
