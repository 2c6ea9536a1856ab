package main

import (
	"errors"
	"fmt"
	"strconv"
)

type SimConfig struct {
	Operations   int
	Doctors      int
	Patients     int
	Slots        int
	BookingRatio float64
	CancelRatio  float64
	ReadRatio    float64
	BillRatio    float64
	Seed         uint64
}

// envReader collects the first parse failure so loadSimConfig can report it
// once every variable has been read.
type envReader struct {
	getenv func(string) string
	err    error
}

func (r *envReader) getInt(key string, def int) int {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v)
		return def
	}
	return n
}

func (r *envReader) getFloat(key string, def float64) float64 {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v)
		return def
	}
	return f
}

func (r *envReader) getUint64(key string) uint64 {
	v := r.getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, v)
		return 0
	}
	return n
}

func (r *envReader) fail(key, value string) {
	if r.err == nil {
		r.err = fmt.Errorf("%s=%q is not a valid number", key, value)
	}
}

// loadSimConfig reads the SIM_* variables through getenv, normalizes the
// operation mix so the ratios sum to 1 and validates the result.
func loadSimConfig(getenv func(string) string) (SimConfig, error) {
	r := &envReader{getenv: getenv}
	cfg := SimConfig{
		Operations:   r.getInt("SIM_OPERATIONS", 10000),
		Doctors:      r.getInt("SIM_DOCTORS", 20),
		Patients:     r.getInt("SIM_PATIENTS", 200),
		Slots:        r.getInt("SIM_SLOTS", 10),
		BookingRatio: r.getFloat("SIM_BOOKING_RATIO", 0.5),
		CancelRatio:  r.getFloat("SIM_CANCEL_RATIO", 0.2),
		ReadRatio:    r.getFloat("SIM_READ_RATIO", 0.2),
		BillRatio:    r.getFloat("SIM_BILL_RATIO", 0.1),
		Seed:         r.getUint64("SEED"),
	}
	if r.err != nil {
		return SimConfig{}, r.err
	}

	if err := cfg.validate(); err != nil {
		return SimConfig{}, err
	}

	total := cfg.BookingRatio + cfg.CancelRatio + cfg.ReadRatio + cfg.BillRatio
	cfg.BookingRatio /= total
	cfg.CancelRatio /= total
	cfg.ReadRatio /= total
	cfg.BillRatio /= total

	return cfg, nil
}

func (c SimConfig) validate() error {
	if c.Operations <= 0 {
		return errors.New("SIM_OPERATIONS must be > 0")
	}
	if c.Doctors <= 0 || c.Patients <= 0 {
		return errors.New("SIM_DOCTORS and SIM_PATIENTS must be > 0")
	}
	if c.Slots <= 0 {
		return errors.New("SIM_SLOTS must be > 0")
	}
	if c.BookingRatio < 0 || c.CancelRatio < 0 || c.ReadRatio < 0 || c.BillRatio < 0 {
		return errors.New("SIM_*_RATIO must not be negative")
	}
	if c.BookingRatio+c.CancelRatio+c.ReadRatio+c.BillRatio == 0 {
		return errors.New("at least one SIM_*_RATIO must be > 0")
	}
	return nil
}
