package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadSimConfig_Defaults(t *testing.T) {
	cfg, err := loadSimConfig(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.Operations)
	assert.Equal(t, 20, cfg.Doctors)
	assert.Equal(t, 200, cfg.Patients)
	assert.Equal(t, 10, cfg.Slots)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.InDelta(t, 0.5, cfg.BookingRatio, 1e-9)
	assert.InDelta(t, 0.1, cfg.BillRatio, 1e-9)
}

func TestLoadSimConfig_NormalizesRatios(t *testing.T) {
	cfg, err := loadSimConfig(envFrom(map[string]string{
		"SIM_BOOKING_RATIO": "2",
		"SIM_CANCEL_RATIO":  "1",
		"SIM_READ_RATIO":    "1",
		"SIM_BILL_RATIO":    "0",
		"SEED":              "99",
	}))
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.BookingRatio, 1e-9)
	assert.InDelta(t, 0.25, cfg.CancelRatio, 1e-9)
	assert.InDelta(t, 0.25, cfg.ReadRatio, 1e-9)
	assert.InDelta(t, 0.0, cfg.BillRatio, 1e-9)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoadSimConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{name: "not a number", vars: map[string]string{"SIM_DOCTORS": "lots"}, wantErr: "SIM_DOCTORS"},
		{name: "bad ratio", vars: map[string]string{"SIM_READ_RATIO": "half"}, wantErr: "SIM_READ_RATIO"},
		{name: "bad seed", vars: map[string]string{"SEED": "-1"}, wantErr: "SEED"},
		{name: "no operations", vars: map[string]string{"SIM_OPERATIONS": "0"}, wantErr: "SIM_OPERATIONS"},
		{name: "no patients", vars: map[string]string{"SIM_PATIENTS": "0"}, wantErr: "SIM_PATIENTS"},
		{name: "no slots", vars: map[string]string{"SIM_SLOTS": "0"}, wantErr: "SIM_SLOTS"},
		{name: "negative ratio", vars: map[string]string{"SIM_CANCEL_RATIO": "-1"}, wantErr: "must not be negative"},
		{
			name:    "all ratios zero",
			vars:    map[string]string{"SIM_BOOKING_RATIO": "0", "SIM_CANCEL_RATIO": "0", "SIM_READ_RATIO": "0", "SIM_BILL_RATIO": "0"},
			wantErr: "at least one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSimConfig(envFrom(tt.vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
