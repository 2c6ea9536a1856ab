package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/hospital-booking-ledger/internal/config"
	"github.com/hackgods/hospital-booking-ledger/internal/logging"
	"github.com/hackgods/hospital-booking-ledger/internal/metrics"
)

const (
	EventPatientRegistered    = "PATIENT_REGISTERED"
	EventDoctorRegistered     = "DOCTOR_REGISTERED"
	EventAppointmentBooked    = "APPOINTMENT_BOOKED"
	EventAppointmentCancelled = "APPOINTMENT_CANCELLED"
	EventBillGenerated        = "BILL_GENERATED"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrSlotUnavailable         = errors.New("slot is not available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// Service is the booking ledger. It issues IDs, keeps doctor availability in
// step with appointments and drives the Confirmed -> Cancelled transition.
// It expects a single caller at a time.
type Service struct {
	repo    Repository
	ids     *IDIssuer
	cfg     config.Config
	metrics *metrics.Collector
	log     *zap.Logger
	now     func() time.Time
}

func NewService(repo Repository, ids *IDIssuer, cfg config.Config, collector *metrics.Collector, log *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		ids:     ids,
		cfg:     cfg,
		metrics: collector,
		log:     log,
		now:     time.Now,
	}
}

// RegisterPatient stores a new patient. The age must be a whole number,
// otherwise ErrInvalidInput is returned and no ID is consumed.
func (s *Service) RegisterPatient(ctx context.Context, cmd RegisterPatientCommand) (*Patient, error) {
	age, err := strconv.Atoi(strings.TrimSpace(cmd.Age))
	if err != nil {
		s.logger(ctx).Debug("patient rejected", zap.String("age", cmd.Age), zap.Error(err))
		return nil, fmt.Errorf("%w: age %q is not a whole number", ErrInvalidInput, cmd.Age)
	}

	p := &Patient{
		Person: Person{Name: cmd.Name, Age: age, Gender: cmd.Gender},
		ID:     s.ids.Next(KindPatient),
	}
	if err := s.repo.CreatePatient(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	s.metrics.PatientsRegisteredTotal.Inc()
	s.logger(ctx).Info("patient registered", zap.String("patient_id", p.ID))
	s.logEvent(ctx, nil, EventPatientRegistered, map[string]any{
		"patient_id": p.ID,
		"name":       p.Name,
	})

	return p, nil
}

// RegisterDoctor stores a new doctor offering cmd.Slots. Unlike patients the
// age is not validated: an unparseable value is kept as 0. Rejecting an empty
// slot list is left to the caller.
func (s *Service) RegisterDoctor(ctx context.Context, cmd RegisterDoctorCommand) (*Doctor, error) {
	age, err := strconv.Atoi(strings.TrimSpace(cmd.Age))
	if err != nil {
		s.logger(ctx).Warn("doctor age not a number, storing 0", zap.String("age", cmd.Age))
		age = 0
	}

	d := &Doctor{
		Person:       Person{Name: cmd.Name, Age: age, Gender: cmd.Gender},
		ID:           s.ids.Next(KindDoctor),
		Speciality:   cmd.Speciality,
		Availability: NewAvailability(cmd.Slots),
	}
	if err := s.repo.CreateDoctor(ctx, d); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	s.metrics.DoctorsRegisteredTotal.Inc()
	s.metrics.AvailableSlots.Add(float64(d.Availability.Len()))
	s.logger(ctx).Info("doctor registered",
		zap.String("doctor_id", d.ID),
		zap.Int("slots", d.Availability.Len()),
	)
	s.logEvent(ctx, nil, EventDoctorRegistered, map[string]any{
		"doctor_id":  d.ID,
		"name":       d.Name,
		"speciality": d.Speciality,
		"slots":      d.Availability.Len(),
	})

	return d, nil
}

// BookAppointment reserves the doctor's (date, time) slot for the patient and
// records a Confirmed appointment. Nothing is mutated when it fails.
func (s *Service) BookAppointment(ctx context.Context, cmd BookAppointmentCommand) (*Appointment, error) {
	patient, err := s.repo.GetPatientByID(ctx, cmd.PatientID)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			s.reject(ctx, "patient_not_found", cmd)
			return nil, err
		}
		return nil, fmt.Errorf("load patient: %w", err)
	}

	doctor, err := s.repo.GetDoctorByID(ctx, cmd.DoctorID)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			s.reject(ctx, "doctor_not_found", cmd)
			return nil, err
		}
		return nil, fmt.Errorf("load doctor: %w", err)
	}

	if !doctor.Availability.IsAvailable(cmd.Date, cmd.Time) {
		s.reject(ctx, "slot_unavailable", cmd)
		return nil, ErrSlotUnavailable
	}

	// Cannot fail: availability was checked above and there is no other writer.
	if err := doctor.Availability.Reserve(cmd.Date, cmd.Time); err != nil {
		return nil, err
	}

	appt := &Appointment{
		ID:        s.ids.Next(KindAppointment),
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Slot:      Slot{Date: cmd.Date, Time: cmd.Time},
		Status:    StatusConfirmed,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateAppointment(ctx, appt); err != nil {
		doctor.Availability.Release(cmd.Date, cmd.Time)
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	patient.AppointmentIDs = append(patient.AppointmentIDs, appt.ID)

	s.metrics.AppointmentsTotal.WithLabelValues(string(StatusConfirmed)).Inc()
	s.metrics.AvailableSlots.Dec()
	s.logger(ctx).Info("appointment booked",
		zap.String("appointment_id", appt.ID),
		zap.String("patient_id", patient.ID),
		zap.String("doctor_id", doctor.ID),
		zap.String("slot", appt.Slot.String()),
	)
	s.logEvent(ctx, &appt.ID, EventAppointmentBooked, map[string]any{
		"patient_id": patient.ID,
		"doctor_id":  doctor.ID,
		"date":       cmd.Date,
		"time":       cmd.Time,
	})

	return appt, nil
}

// CancelAppointment marks the appointment Cancelled and hands its slot back to
// the doctor. Cancelling an already Cancelled appointment changes nothing; in
// particular the slot is not released a second time, since it may have been
// booked again in the meantime.
func (s *Service) CancelAppointment(ctx context.Context, id string) (*Appointment, error) {
	appt, err := s.repo.UpdateAppointmentStatus(ctx, id, StatusConfirmed, StatusCancelled)
	if err != nil {
		if errors.Is(err, ErrInvalidStatusTransition) && appt != nil {
			s.logger(ctx).Info("appointment already cancelled", zap.String("appointment_id", id))
			return appt, nil
		}
		if errors.Is(err, ErrAppointmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}

	doctor, err := s.repo.GetDoctorByID(ctx, appt.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor %s for appointment %s: %w", appt.DoctorID, id, err)
	}
	doctor.Availability.Release(appt.Slot.Date, appt.Slot.Time)

	s.metrics.AppointmentsTotal.WithLabelValues(string(StatusCancelled)).Inc()
	s.metrics.AvailableSlots.Inc()
	s.logger(ctx).Info("appointment cancelled",
		zap.String("appointment_id", appt.ID),
		zap.String("doctor_id", appt.DoctorID),
		zap.String("slot", appt.Slot.String()),
	)
	s.logEvent(ctx, &appt.ID, EventAppointmentCancelled, map[string]any{
		"doctor_id": appt.DoctorID,
		"date":      appt.Slot.Date,
		"time":      appt.Slot.Time,
	})

	return appt, nil
}

// ViewAppointments returns the patient's appointments in booking order,
// including cancelled ones.
func (s *Service) ViewAppointments(ctx context.Context, patientID string) ([]AppointmentDetail, error) {
	appts, err := s.repo.ListAppointmentsByPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("list appointments by patient: %w", err)
	}
	return appts, nil
}

// GetAppointment retrieves an appointment with its patient and doctor.
func (s *Service) GetAppointment(ctx context.Context, id string) (*AppointmentDetail, error) {
	detail, err := s.repo.GetAppointmentDetail(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return detail, nil
}

func (s *Service) PatientProfile(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetPatientByID(ctx, id)
}

// DoctorSchedule returns the doctor's open slots in the order they were
// offered.
func (s *Service) DoctorSchedule(ctx context.Context, id string) ([]Slot, error) {
	d, err := s.repo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.Availability.Slots(), nil
}

func (s *Service) PatientIDs(ctx context.Context) ([]string, error) {
	patients, err := s.repo.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	ids := make([]string, 0, len(patients))
	for _, p := range patients {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *Service) DoctorIDs(ctx context.Context) ([]string, error) {
	doctors, err := s.repo.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	ids := make([]string, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (s *Service) Events(ctx context.Context) ([]EventLog, error) {
	return s.repo.ListEvents(ctx)
}

func (s *Service) reject(ctx context.Context, reason string, cmd BookAppointmentCommand) {
	s.metrics.BookingRejectionsTotal.WithLabelValues(reason).Inc()
	s.logger(ctx).Warn("booking rejected",
		zap.String("reason", reason),
		zap.String("patient_id", cmd.PatientID),
		zap.String("doctor_id", cmd.DoctorID),
		zap.String("date", cmd.Date),
		zap.String("time", cmd.Time),
	)
}

// logger tags s.log with the command_id carried by ctx.
func (s *Service) logger(ctx context.Context) *zap.Logger {
	return logging.FromContext(ctx, s.log)
}

func (s *Service) logEvent(ctx context.Context, appointmentID *string, eventType string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger(ctx).Error("failed to marshal event payload", zap.String("event_type", eventType), zap.Error(err))
		data = nil
	}

	ev := EventLog{
		EventType:     eventType,
		AppointmentID: appointmentID,
		Payload:       data,
		CreatedAt:     s.now(),
	}

	if err := s.repo.InsertEvent(ctx, ev); err != nil {
		s.logger(ctx).Error("failed to insert event log", zap.String("event_type", eventType), zap.Error(err))
	}
}
