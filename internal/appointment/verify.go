package appointment

import (
	"context"
	"fmt"
)

// VerifyAvailability checks that every Confirmed appointment holds a slot its
// doctor no longer offers, and that no slot is held twice.
func VerifyAvailability(ctx context.Context, repo Repository) error {
	appts, err := repo.ListAppointments(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}

	type held struct {
		doctorID string
		slot     Slot
	}
	holders := make(map[held]string)

	for _, a := range appts {
		if a.Status != StatusConfirmed {
			continue
		}

		key := held{doctorID: a.DoctorID, slot: a.Slot}
		if other, ok := holders[key]; ok {
			return fmt.Errorf("slot %s of doctor %s held by both %s and %s", a.Slot, a.DoctorID, other, a.ID)
		}
		holders[key] = a.ID

		d, err := repo.GetDoctorByID(ctx, a.DoctorID)
		if err != nil {
			return fmt.Errorf("appointment %s: %w", a.ID, err)
		}
		if d.Availability.IsAvailable(a.Slot.Date, a.Slot.Time) {
			return fmt.Errorf("slot %s of doctor %s is open but held by %s", a.Slot, a.DoctorID, a.ID)
		}
	}

	return nil
}
