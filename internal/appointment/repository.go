package appointment

import (
	"context"
	"errors"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDuplicateID         = errors.New("duplicate id")
)

// Repository holds every patient, doctor, appointment and journal entry for
// the lifetime of the process.
//
// Entities returned by the Get methods are the stored instances; the Service
// mutates them in place (availability, appointment lists).
type Repository interface {
	CreatePatient(ctx context.Context, p *Patient) error
	GetPatientByID(ctx context.Context, id string) (*Patient, error)
	ListPatients(ctx context.Context) ([]*Patient, error)

	CreateDoctor(ctx context.Context, d *Doctor) error
	GetDoctorByID(ctx context.Context, id string) (*Doctor, error)
	ListDoctors(ctx context.Context) ([]*Doctor, error)

	CreateAppointment(ctx context.Context, a *Appointment) error
	GetAppointmentByID(ctx context.Context, id string) (*Appointment, error)
	GetAppointmentDetail(ctx context.Context, id string) (*AppointmentDetail, error)
	ListAppointmentsByPatient(ctx context.Context, patientID string) ([]AppointmentDetail, error)
	ListAppointments(ctx context.Context) ([]*Appointment, error)

	// UpdateAppointmentStatus moves an appointment from one status to another.
	// It returns ErrInvalidStatusTransition if the current status is not from.
	UpdateAppointmentStatus(ctx context.Context, id string, from, to AppointmentStatus) (*Appointment, error)

	InsertEvent(ctx context.Context, ev EventLog) error
	ListEvents(ctx context.Context) ([]EventLog, error)
}
