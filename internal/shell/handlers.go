package shell

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hackgods/hospital-booking-ledger/internal/appointment"
)

func (s *Shell) registerPatient(ctx context.Context) error {
	in, err := s.prompts("Enter Patient's Name:", "Enter Patient's Age:", "Enter Patient's Gender:")
	if err != nil {
		return err
	}

	p, err := s.svc.RegisterPatient(ctx, appointment.RegisterPatientCommand{
		Name:   in[0],
		Age:    in[1],
		Gender: in[2],
	})
	if err != nil {
		return err
	}

	s.printf("Patient %s successfully added.\n", p.ID)
	return nil
}

func (s *Shell) addDoctor(ctx context.Context) error {
	in, err := s.prompts(
		"Enter Doctor's Name:",
		"Enter Doctor's Age:",
		"Enter Doctor's Gender:",
		"Enter Doctor's Speciality:",
	)
	if err != nil {
		return err
	}

	var slots []appointment.Slot
	s.println("Enter available slots (type 'done' to finish):")
	for {
		line, err := s.prompt("Enter slot (format: YYYY-MM-DD HH:MM): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(line, "done") {
			break
		}

		slot, err := s.parseSlot(line)
		if err != nil {
			s.println("Invalid Format. Please use 'YYYY-MM-DD HH:MM'")
			continue
		}
		slots = append(slots, slot)
	}

	if len(slots) == 0 {
		s.println("Doctor not added. No valid slots were provided.")
		return nil
	}

	d, err := s.svc.RegisterDoctor(ctx, appointment.RegisterDoctorCommand{
		Name:       in[0],
		Age:        in[1],
		Gender:     in[2],
		Speciality: in[3],
		Slots:      slots,
	})
	if err != nil {
		return err
	}

	s.printf("Doctor %s successfully added.\n", d.ID)
	return nil
}

func (s *Shell) bookAppointment(ctx context.Context) error {
	if err := s.listPatientIDs(ctx); err != nil {
		return err
	}
	doctorIDs, err := s.svc.DoctorIDs(ctx)
	if err != nil {
		return err
	}
	s.println("\nAvailable Doctor IDs:")
	for _, id := range doctorIDs {
		s.printf(" - %s\n", id)
	}

	in, err := s.prompts(
		"Enter Patient ID (e.g. P001): ",
		"Enter Doctor ID (e.g. D001): ",
		"Enter date (YYYY-MM-DD): ",
		"Enter time (HH:MM): ",
	)
	if err != nil {
		return err
	}

	appt, err := s.svc.BookAppointment(ctx, appointment.BookAppointmentCommand{
		PatientID: in[0],
		DoctorID:  in[1],
		Date:      in[2],
		Time:      in[3],
	})
	if err != nil {
		return err
	}

	detail, err := s.svc.GetAppointment(ctx, appt.ID)
	if err != nil {
		return err
	}

	s.printf("Appointment %s confirmed for %s with Dr. %s on %s at %s.\n",
		detail.ID, detail.Patient.Name, detail.Doctor.Name, detail.Slot.Date, detail.Slot.Time)
	return nil
}

func (s *Shell) viewAppointments(ctx context.Context) error {
	if err := s.listPatientIDs(ctx); err != nil {
		return err
	}

	id, err := s.prompt("Enter Patient ID: ")
	if err != nil {
		return err
	}

	p, err := s.svc.PatientProfile(ctx, id)
	if err != nil {
		return err
	}
	appts, err := s.svc.ViewAppointments(ctx, id)
	if err != nil {
		return err
	}

	s.printf("%s, Patient ID: %s\n", p.Summary(), p.ID)
	if len(appts) == 0 {
		s.println("No appointments scheduled.")
		return nil
	}

	s.printf("Appointments for %s (ID: %s):\n", p.Name, p.ID)
	for _, a := range appts {
		s.printf(" - %s: Dr. %s on %s at %s | Status: %s\n",
			a.ID, a.Doctor.Name, a.Slot.Date, a.Slot.Time, a.Status)
	}
	return nil
}

func (s *Shell) cancelAppointment(ctx context.Context) error {
	id, err := s.prompt("Enter Appointment ID: ")
	if err != nil {
		return err
	}

	appt, err := s.svc.CancelAppointment(ctx, id)
	if err != nil {
		return err
	}

	s.printf("Appointment %s has been cancelled.\n", appt.ID)
	return nil
}

func (s *Shell) generateBill(ctx context.Context) error {
	id, err := s.prompt("Enter Appointment ID: ")
	if err != nil {
		return err
	}
	raw, err := s.prompt("Enter additional service charges: ")
	if err != nil {
		return err
	}

	bill, err := s.svc.GenerateBill(ctx, id, parseCharges(raw))
	if err != nil {
		return err
	}

	cur := s.cfg.Currency
	s.printf("\n===== %s =======\n", s.cfg.HospitalName)
	s.printf("Patient: %s\n", bill.PatientName)
	s.printf("Doctor: %s\n", bill.DoctorName)
	s.printf("Doctor's Visit Fee: %s %.2f\n", cur, bill.BaseFee)
	s.printf("Additional Services: %s %.2f\n", cur, bill.AdditionalCharges)
	s.printf("Total: %s %.2f\n", cur, bill.Total)
	s.println("===================================")
	return nil
}

func (s *Shell) exit(ctx context.Context) error {
	s.println("Thank you for using HSM. Goodbye!")
	return errExit
}

func (s *Shell) listPatientIDs(ctx context.Context) error {
	ids, err := s.svc.PatientIDs(ctx)
	if err != nil {
		return err
	}
	s.println("\nAvailable Patient IDs:")
	for _, id := range ids {
		s.printf(" - %s\n", id)
	}
	return nil
}

// parseSlot splits a "YYYY-MM-DD HH:MM" line and checks both halves.
func (s *Shell) parseSlot(line string) (appointment.Slot, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return appointment.Slot{}, fmt.Errorf("%w: slot %q needs a date and a time", appointment.ErrInvalidInput, line)
	}

	in := SlotInput{Date: fields[0], Time: fields[1]}
	if err := s.validate.Struct(in); err != nil {
		return appointment.Slot{}, fmt.Errorf("%w: slot %q: %v", appointment.ErrInvalidInput, line, err)
	}

	// The hour verb accepts "9:00"; store the zero-padded form bookings use.
	t, err := time.Parse(slotTimeLayout, in.Time)
	if err != nil {
		return appointment.Slot{}, fmt.Errorf("%w: slot %q: %v", appointment.ErrInvalidInput, line, err)
	}

	return appointment.Slot{Date: in.Date, Time: t.Format(slotTimeLayout)}, nil
}

// parseCharges reads the optional additional charge. Anything that is not a
// finite number counts as 0; negative amounts are kept.
func parseCharges(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (s *Shell) handleError(err error) {
	switch {
	case errors.Is(err, appointment.ErrInvalidInput):
		s.println("Invalid Criteria Entered")
	case errors.Is(err, appointment.ErrPatientNotFound):
		s.println("Patient not found.")
	case errors.Is(err, appointment.ErrDoctorNotFound):
		s.println("Doctor not found.")
	case errors.Is(err, appointment.ErrSlotUnavailable):
		s.println("Sorry that slot is already taken")
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		s.println("Appointment was not found.")
	default:
		s.printf("Something went wrong: %v\n", err)
	}
}
