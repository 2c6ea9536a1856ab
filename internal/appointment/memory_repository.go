package appointment

import (
	"context"
	"fmt"
)

// MemoryRepository is the in-process Repository. It keeps one Directory per
// entity kind plus the event journal. It is not safe for concurrent use; the
// ledger has a single writer.
type MemoryRepository struct {
	patients     *Directory[*Patient]
	doctors      *Directory[*Doctor]
	appointments *Directory[*Appointment]
	events       []EventLog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		patients:     NewDirectory[*Patient](),
		doctors:      NewDirectory[*Doctor](),
		appointments: NewDirectory[*Appointment](),
	}
}

func (r *MemoryRepository) CreatePatient(ctx context.Context, p *Patient) error {
	if err := r.patients.Put(p.ID, p); err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *MemoryRepository) GetPatientByID(ctx context.Context, id string) (*Patient, error) {
	p, ok := r.patients.Get(id)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func (r *MemoryRepository) ListPatients(ctx context.Context) ([]*Patient, error) {
	out := make([]*Patient, 0, r.patients.Len())
	for _, p := range r.patients.All() {
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryRepository) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := r.doctors.Put(d.ID, d); err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

func (r *MemoryRepository) GetDoctorByID(ctx context.Context, id string) (*Doctor, error) {
	d, ok := r.doctors.Get(id)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

func (r *MemoryRepository) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	out := make([]*Doctor, 0, r.doctors.Len())
	for _, d := range r.doctors.All() {
		out = append(out, d)
	}
	return out, nil
}

func (r *MemoryRepository) CreateAppointment(ctx context.Context, a *Appointment) error {
	if err := r.appointments.Put(a.ID, a); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *MemoryRepository) GetAppointmentByID(ctx context.Context, id string) (*Appointment, error) {
	a, ok := r.appointments.Get(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (r *MemoryRepository) GetAppointmentDetail(ctx context.Context, id string) (*AppointmentDetail, error) {
	a, err := r.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.hydrate(a)
}

func (r *MemoryRepository) ListAppointmentsByPatient(ctx context.Context, patientID string) ([]AppointmentDetail, error) {
	p, err := r.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]AppointmentDetail, 0, len(p.AppointmentIDs))
	for _, id := range p.AppointmentIDs {
		a, err := r.GetAppointmentByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve appointment %s of patient %s: %w", id, patientID, err)
		}
		detail, err := r.hydrate(a)
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}

func (r *MemoryRepository) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	out := make([]*Appointment, 0, r.appointments.Len())
	for _, a := range r.appointments.All() {
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryRepository) UpdateAppointmentStatus(ctx context.Context, id string, from, to AppointmentStatus) (*Appointment, error) {
	a, err := r.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != from || !a.CanTransitionTo(to) {
		return a, ErrInvalidStatusTransition
	}
	a.Status = to
	return a, nil
}

func (r *MemoryRepository) InsertEvent(ctx context.Context, ev EventLog) error {
	ev.ID = int64(len(r.events) + 1)
	r.events = append(r.events, ev)
	return nil
}

func (r *MemoryRepository) ListEvents(ctx context.Context) ([]EventLog, error) {
	out := make([]EventLog, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *MemoryRepository) hydrate(a *Appointment) (*AppointmentDetail, error) {
	p, ok := r.patients.Get(a.PatientID)
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", a.ID, ErrPatientNotFound)
	}
	d, ok := r.doctors.Get(a.DoctorID)
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", a.ID, ErrDoctorNotFound)
	}
	return &AppointmentDetail{Appointment: *a, Patient: p, Doctor: d}, nil
}
