package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

type OperationMetrics struct {
	Total     int64
	Success   int64
	Rejected  int64
	Error     int64
	Latencies []time.Duration
}

func (om *OperationMetrics) Record(latency time.Duration, success bool, rejected bool) {
	om.Total++
	switch {
	case success:
		om.Success++
	case rejected:
		om.Rejected++
	default:
		om.Error++
	}
	om.Latencies = append(om.Latencies, latency)
}

func (om *OperationMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	if len(om.Latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := slices.Clone(om.Latencies)
	slices.Sort(latencies)

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]
	p50 = latencies[percentileIndex(len(latencies), 50)]
	p95 = latencies[percentileIndex(len(latencies), 95)]

	return avg, min, max, p50, p95
}

// percentileIndex is the nearest-rank index of pct in a sorted slice of n.
func percentileIndex(n, pct int) int {
	idx := n * pct / 100
	if idx >= n {
		idx = n - 1
	}
	return idx
}

type Metrics struct {
	Booking OperationMetrics
	Cancel  OperationMetrics
	View    OperationMetrics
	Bill    OperationMetrics
}

func (s *Simulator) PrintReport(w io.Writer) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintln(w, "SIMULATION REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "Run: %s\n", s.runID)
	fmt.Fprintf(w, "Operations: %d\n", s.config.Operations)
	fmt.Fprintf(w, "Doctors: %d  Patients: %d  Slots per doctor: %d\n",
		len(s.pool.Doctors), len(s.pool.Patients), s.config.Slots)
	fmt.Fprintln(w)

	printOperationReport(w, "Booking", &s.metrics.Booking)
	printOperationReport(w, "Cancel", &s.metrics.Cancel)
	printOperationReport(w, "View appointments", &s.metrics.View)
	printOperationReport(w, "Bill", &s.metrics.Bill)
}

func printOperationReport(w io.Writer, name string, om *OperationMetrics) {
	if om.Total == 0 {
		return
	}

	avg, min, max, p50, p95 := om.Stats()

	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  Total: %d\n", om.Total)
	fmt.Fprintf(w, "  Success: %d (%.1f%%)\n", om.Success, float64(om.Success)/float64(om.Total)*100)
	if om.Rejected > 0 {
		fmt.Fprintf(w, "  Rejected: %d (%.1f%%)\n", om.Rejected, float64(om.Rejected)/float64(om.Total)*100)
	}
	if om.Error > 0 {
		fmt.Fprintf(w, "  Errors: %d (%.1f%%)\n", om.Error, float64(om.Error)/float64(om.Total)*100)
	}
	fmt.Fprintf(w, "  Latency: avg=%s min=%s max=%s p50=%s p95=%s\n", avg, min, max, p50, p95)
	fmt.Fprintln(w)
}
