package shell

import "context"

const slotTimeLayout = "15:04"

// SlotInput is one "YYYY-MM-DD HH:MM" line typed while adding a doctor.
type SlotInput struct {
	Date string `validate:"required,datetime=2006-01-02"`
	Time string `validate:"required,datetime=15:04"`
}

type commandFunc func(ctx context.Context) error

type option struct {
	key    string
	label  string
	handle commandFunc
}
