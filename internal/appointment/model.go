package appointment

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Person is the record shared by patients and doctors.
type Person struct {
	Name   string
	Age    int
	Gender string
}

func (p Person) Summary() string {
	return fmt.Sprintf("Name: %s, Age: %d, Gender: %s", p.Name, p.Age, p.Gender)
}

type Patient struct {
	Person
	ID string

	// AppointmentIDs are resolved through the Repository at read time.
	AppointmentIDs []string
}

type Doctor struct {
	Person
	ID           string
	Speciality   string
	Availability *Availability
}

// Slot is a (date, time) pair offered by a doctor, e.g. ("2025-06-01", "09:00").
type Slot struct {
	Date string
	Time string
}

func (s Slot) String() string {
	return s.Date + " " + s.Time
}

type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Slot      Slot
	Status    AppointmentStatus
	CreatedAt time.Time
}

// CanTransitionTo reports whether the appointment may move to newStatus.
// Cancelled is terminal.
func (a *Appointment) CanTransitionTo(newStatus AppointmentStatus) bool {
	allowed := map[AppointmentStatus][]AppointmentStatus{
		StatusConfirmed: {StatusCancelled},
		StatusCancelled: {},
	}

	for _, s := range allowed[a.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

type EventLog struct {
	ID            int64
	EventType     string
	AppointmentID *string
	Payload       []byte
	CreatedAt     time.Time
}

// AppointmentDetail is an appointment with its patient and doctor resolved.
type AppointmentDetail struct {
	Appointment
	Patient *Patient
	Doctor  *Doctor
}

type RegisterPatientCommand struct {
	Name   string
	Age    string
	Gender string
}

type RegisterDoctorCommand struct {
	Name       string
	Age        string
	Gender     string
	Speciality string
	Slots      []Slot
}

type BookAppointmentCommand struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
}
