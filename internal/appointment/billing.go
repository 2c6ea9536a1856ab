package appointment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type Bill struct {
	AppointmentID     string
	PatientName       string
	DoctorName        string
	BaseFee           float64
	AdditionalCharges float64
	Total             float64
}

// BillTotal is the fee plus additional charges. Negative charges are passed
// through unchanged.
func BillTotal(baseFee, additionalCharges float64) float64 {
	return baseFee + additionalCharges
}

// GenerateBill prices the appointment. Cancelled appointments are billed the
// same way as confirmed ones.
func (s *Service) GenerateBill(ctx context.Context, appointmentID string, additionalCharges float64) (*Bill, error) {
	detail, err := s.repo.GetAppointmentDetail(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load appointment for bill: %w", err)
	}

	bill := &Bill{
		AppointmentID:     detail.ID,
		PatientName:       detail.Patient.Name,
		DoctorName:        detail.Doctor.Name,
		BaseFee:           s.cfg.BaseFee,
		AdditionalCharges: additionalCharges,
		Total:             BillTotal(s.cfg.BaseFee, additionalCharges),
	}

	s.metrics.BillsGeneratedTotal.Inc()
	s.metrics.BillTotal.Observe(bill.Total)
	s.logger(ctx).Info("bill generated",
		zap.String("appointment_id", bill.AppointmentID),
		zap.Float64("total", bill.Total),
	)
	s.logEvent(ctx, &bill.AppointmentID, EventBillGenerated, map[string]any{
		"base_fee":           bill.BaseFee,
		"additional_charges": bill.AdditionalCharges,
		"total":              bill.Total,
	})

	return bill, nil
}
