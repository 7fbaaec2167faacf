package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// SchedulingConfig carries the shop-wide knobs shared by availability and booking.
type SchedulingConfig struct {
	Location     *time.Location
	Granularity  time.Duration
	DefaultHours domain.DefaultHours

	ReadRetryAttempts int
	RetryBackoff      time.Duration
}

func (c SchedulingConfig) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// readWithRetry retries idempotent reads that failed with a transient store
// error, backing off linearly. Writes never go through here.
func readWithRetry(ctx context.Context, cfg SchedulingConfig, fn func() error) error {
	attempts := cfg.ReadRetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil || !httperr.IsKind(err, httperr.KindTransient) {
			return err
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(cfg.RetryBackoff * time.Duration(i+1)):
		}
	}
	return err
}

func uniqueIDs(ids []uint) error {
	if len(ids) == 0 {
		return httperr.Validation("empty_services", "Selecione ao menos um serviço.")
	}
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if id == 0 {
			return httperr.Validation("invalid_service", "Serviço inválido.")
		}
		if seen[id] {
			return httperr.Validation("duplicate_service", "Serviço repetido na seleção.")
		}
		seen[id] = true
	}
	return nil
}
