package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.PatientsRegisteredTotal.Inc()
	a.AppointmentsTotal.WithLabelValues("Confirmed").Add(2)

	assert.Equal(t, float64(1), testutil.ToFloat64(a.PatientsRegisteredTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.PatientsRegisteredTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(a.AppointmentsTotal.WithLabelValues("Confirmed")))
}

func TestGatherer(t *testing.T) {
	c := NewCollector("hospital")
	c.BillsGeneratedTotal.Inc()

	expected := `
# HELP hospital_billing_bills_generated_total Total bills generated.
# TYPE hospital_billing_bills_generated_total counter
hospital_billing_bills_generated_total 1
`
	err := testutil.GatherAndCompare(c.Gatherer(), strings.NewReader(expected), "hospital_billing_bills_generated_total")
	assert.NoError(t, err)
}

func TestWriteTextfile(t *testing.T) {
	c := NewCollector("hospital")
	c.AvailableSlots.Set(7)
	c.BillTotal.Observe(6500)

	path := filepath.Join(t.TempDir(), "ledger.prom")
	require.NoError(t, c.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "hospital_ledger_available_slots 7")
	assert.Contains(t, text, "hospital_billing_bill_total_count 1")
	assert.Contains(t, text, "hospital_billing_bill_total_sum 6500")
}

func TestWriteTextfile_BadPath(t *testing.T) {
	c := NewCollector("hospital")

	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "ledger.prom"))
	assert.ErrorContains(t, err, "write metrics textfile")
}
