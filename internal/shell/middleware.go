package shell

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackgods/hospital-booking-ledger/internal/logging"
)

// withCommandID tags each menu command with a unique ID.
func withCommandID(next commandFunc) commandFunc {
	return func(ctx context.Context) error {
		return next(logging.WithCommandID(ctx, uuid.New().String()))
	}
}

// withLogging logs the option, outcome and duration of a command.
func withLogging(log *zap.Logger, key string, next commandFunc) commandFunc {
	return func(ctx context.Context) error {
		start := time.Now()

		err := next(ctx)

		fields := []zap.Field{
			zap.String("option", key),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil && err != errExit {
			fields = append(fields, zap.Error(err))
		}
		logging.FromContext(ctx, log).Debug("command handled", fields...)

		return err
	}
}
