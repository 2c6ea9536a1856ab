package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackgods/hospital-booking-ledger/internal/appointment"
	"github.com/hackgods/hospital-booking-ledger/internal/config"
	"github.com/hackgods/hospital-booking-ledger/internal/logging"
	"github.com/hackgods/hospital-booking-ledger/internal/metrics"
	"github.com/hackgods/hospital-booking-ledger/internal/seed"
)

// DataPool tracks what the simulator can pick from. Offered slots stay in the
// pool after booking so later picks can collide.
type DataPool struct {
	Patients     []string
	Doctors      []string
	Offered      map[string][]appointment.Slot
	Appointments []string
}

type Simulator struct {
	runID   string
	config  SimConfig
	svc     *appointment.Service
	repo    appointment.Repository
	pool    *DataPool
	rng     *rand.Rand
	faker   *gofakeit.Faker
	metrics Metrics
}

func main() {
	baseCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(baseCfg.LogLevel, baseCfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadSimConfig(os.Getenv)
	if err != nil {
		logger.Fatal("invalid simulation config", zap.Error(err))
	}

	ctx := context.Background()
	sim, err := newSimulator(ctx, cfg, baseCfg, logger)
	if err != nil {
		logger.Fatal("simulation setup failed", zap.Error(err))
	}

	logger.Info("simulation starting",
		zap.String("run_id", sim.runID),
		zap.Int("operations", cfg.Operations),
		zap.Int("doctors", len(sim.pool.Doctors)),
		zap.Int("patients", len(sim.pool.Patients)),
	)

	sim.Run(ctx)
	sim.PrintReport(os.Stdout)

	if err := appointment.VerifyAvailability(ctx, sim.repo); err != nil {
		fmt.Printf("INVARIANT VIOLATION: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Availability invariant: OK")
}

func newSimulator(ctx context.Context, cfg SimConfig, baseCfg config.Config, logger *zap.Logger) (*Simulator, error) {
	faker := seed.NewFaker(cfg.Seed)
	repo := appointment.NewMemoryRepository()
	// Per-operation ledger logs would drown the report.
	svc := appointment.NewService(repo, appointment.NewIDIssuer(), baseCfg, metrics.NewCollector("simulate"), logger.WithOptions(zap.IncreaseLevel(zap.ErrorLevel)))

	doctors, err := seed.Doctors(ctx, svc, faker, cfg.Doctors, cfg.Slots, time.Now())
	if err != nil {
		return nil, err
	}
	patients, err := seed.Patients(ctx, svc, faker, cfg.Patients)
	if err != nil {
		return nil, err
	}

	pool := &DataPool{Offered: make(map[string][]appointment.Slot, len(doctors))}
	for _, d := range doctors {
		pool.Doctors = append(pool.Doctors, d.ID)
		pool.Offered[d.ID] = d.Availability.Slots()
	}
	for _, p := range patients {
		pool.Patients = append(pool.Patients, p.ID)
	}

	return &Simulator{
		runID:  uuid.NewString(),
		config: cfg,
		svc:    svc,
		repo:   repo,
		pool:   pool,
		rng:    rand.New(rand.NewSource(int64(faker.Uint64()))),
		faker:  faker,
	}, nil
}

func (s *Simulator) Run(ctx context.Context) {
	for i := 0; i < s.config.Operations; i++ {
		r := s.rng.Float64()
		switch {
		case r < s.config.BookingRatio:
			s.doBooking(ctx)
		case r < s.config.BookingRatio+s.config.CancelRatio:
			s.doCancel(ctx)
		case r < s.config.BookingRatio+s.config.CancelRatio+s.config.ReadRatio:
			s.doView(ctx)
		default:
			s.doBill(ctx)
		}
	}
}

func (s *Simulator) doBooking(ctx context.Context) {
	doctorID := s.pool.Doctors[s.rng.Intn(len(s.pool.Doctors))]
	patientID := s.pool.Patients[s.rng.Intn(len(s.pool.Patients))]
	offered := s.pool.Offered[doctorID]
	slot := offered[s.rng.Intn(len(offered))]

	start := time.Now()
	appt, err := s.svc.BookAppointment(ctx, appointment.BookAppointmentCommand{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      slot.Date,
		Time:      slot.Time,
	})
	latency := time.Since(start)

	if err == nil {
		s.pool.Appointments = append(s.pool.Appointments, appt.ID)
	}
	s.metrics.Booking.Record(latency, err == nil, errors.Is(err, appointment.ErrSlotUnavailable))
}

func (s *Simulator) doCancel(ctx context.Context) {
	id, ok := s.randomAppointment()
	if !ok {
		return
	}

	start := time.Now()
	_, err := s.svc.CancelAppointment(ctx, id)
	s.metrics.Cancel.Record(time.Since(start), err == nil, false)
}

func (s *Simulator) doView(ctx context.Context) {
	patientID := s.pool.Patients[s.rng.Intn(len(s.pool.Patients))]

	start := time.Now()
	_, err := s.svc.ViewAppointments(ctx, patientID)
	s.metrics.View.Record(time.Since(start), err == nil, false)
}

func (s *Simulator) doBill(ctx context.Context) {
	id, ok := s.randomAppointment()
	if !ok {
		return
	}

	start := time.Now()
	_, err := s.svc.GenerateBill(ctx, id, s.faker.Price(0, 3000))
	s.metrics.Bill.Record(time.Since(start), err == nil, false)
}

func (s *Simulator) randomAppointment() (string, bool) {
	if len(s.pool.Appointments) == 0 {
		return "", false
	}
	return s.pool.Appointments[s.rng.Intn(len(s.pool.Appointments))], true
}
