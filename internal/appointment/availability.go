package appointment

// Availability is the set of slots a doctor has not committed to an active
// appointment. Slots keep the order in which they were offered; a released
// slot goes to the back.
type Availability struct {
	order []Slot
	index map[Slot]struct{}
}

// NewAvailability builds the set from slots. Duplicates collapse to one.
func NewAvailability(slots []Slot) *Availability {
	a := &Availability{index: make(map[Slot]struct{}, len(slots))}
	for _, s := range slots {
		a.add(s)
	}
	return a
}

func (a *Availability) IsAvailable(date, time string) bool {
	_, ok := a.index[Slot{Date: date, Time: time}]
	return ok
}

// Reserve removes the slot. It fails with ErrSlotUnavailable if the slot is
// not in the set.
func (a *Availability) Reserve(date, time string) error {
	slot := Slot{Date: date, Time: time}
	if _, ok := a.index[slot]; !ok {
		return ErrSlotUnavailable
	}

	delete(a.index, slot)
	for i, s := range a.order {
		if s == slot {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return nil
}

// Release puts the slot back. Releasing a slot that is already present is a
// no-op.
func (a *Availability) Release(date, time string) {
	a.add(Slot{Date: date, Time: time})
}

// Slots returns a copy of the available slots in offer order.
func (a *Availability) Slots() []Slot {
	out := make([]Slot, len(a.order))
	copy(out, a.order)
	return out
}

func (a *Availability) Len() int {
	return len(a.order)
}

func (a *Availability) add(s Slot) {
	if _, ok := a.index[s]; ok {
		return
	}
	a.index[s] = struct{}{}
	a.order = append(a.order, s)
}
