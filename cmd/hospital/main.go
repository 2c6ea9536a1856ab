package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hackgods/hospital-booking-ledger/internal/appointment"
	"github.com/hackgods/hospital-booking-ledger/internal/config"
	"github.com/hackgods/hospital-booking-ledger/internal/logging"
	"github.com/hackgods/hospital-booking-ledger/internal/metrics"
	"github.com/hackgods/hospital-booking-ledger/internal/seed"
	"github.com/hackgods/hospital-booking-ledger/internal/shell"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital scheduling ledger with a text menu",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().Int("seed-doctors", 0, "register this many fake doctors before the menu starts (overrides SEED_DOCTORS)")
	rootCmd.Flags().Int("seed-patients", 0, "register this many fake patients before the menu starts (overrides SEED_PATIENTS)")
	rootCmd.Flags().String("log-level", "", "zap log level (overrides LOG_LEVEL)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("hospital ledger starting", zap.String("env", cfg.Env))

	rootCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector("hospital")
	svc := appointment.NewService(appointment.NewMemoryRepository(), appointment.NewIDIssuer(), cfg, collector, log)

	if err := seedLedger(rootCtx, svc, cfg); err != nil {
		return err
	}

	sh := shell.New(svc, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log)

	// The shell blocks on stdin, so it runs apart from the signal wait. It is
	// still the only caller of the ledger.
	done := make(chan error, 1)
	go func() { done <- sh.Run(rootCtx) }()

	select {
	case err = <-done:
	case <-rootCtx.Done():
		log.Info("shutdown signal received")
	}

	if cfg.MetricsTextfile != "" {
		if werr := collector.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.Error("metrics export failed", zap.Error(werr))
		}
	}

	log.Info("hospital ledger stopped")
	return err
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("seed-doctors") {
		cfg.SeedDoctors, _ = cmd.Flags().GetInt("seed-doctors")
	}
	if cmd.Flags().Changed("seed-patients") {
		cfg.SeedPatients, _ = cmd.Flags().GetInt("seed-patients")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
}

func seedLedger(ctx context.Context, svc *appointment.Service, cfg config.Config) error {
	if cfg.SeedDoctors == 0 && cfg.SeedPatients == 0 {
		return nil
	}

	faker := seed.NewFaker(cfg.Seed)
	if _, err := seed.Doctors(ctx, svc, faker, cfg.SeedDoctors, cfg.SeedSlots, time.Now()); err != nil {
		return err
	}
	if _, err := seed.Patients(ctx, svc, faker, cfg.SeedPatients); err != nil {
		return err
	}
	return nil
}
