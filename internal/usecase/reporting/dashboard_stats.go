package reporting

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// DashboardStats aggregates today's and this month's figures in the shop
// timezone. When a cache is configured results may lag the ledger by the TTL.
type DashboardStats struct {
	repo  reporting.Repository
	cache reporting.Cache
	ttl   time.Duration
	loc   *time.Location
	now   timezone.Clock
	log   *slog.Logger
}

func NewDashboardStats(
	repo reporting.Repository,
	cache reporting.Cache,
	ttl time.Duration,
	loc *time.Location,
	now timezone.Clock,
	log *slog.Logger,
) *DashboardStats {
	return &DashboardStats{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		loc:   loc,
		now:   now,
		log:   log,
	}
}

func (uc *DashboardStats) Execute(ctx context.Context) (reporting.Stats, error) {
	now := uc.now().In(uc.loc)
	today := now.Format(timezone.DateLayout)
	key := today

	if uc.cache != nil {
		if s, ok, err := uc.cache.GetStats(ctx, key); err != nil {
			uc.log.Warn("stats cache read failed", "err", err)
		} else if ok {
			return *s, nil
		}
	}

	s, err := uc.compute(ctx, now)
	if err != nil {
		return reporting.Stats{}, err
	}

	if uc.cache != nil && uc.ttl > 0 {
		if err := uc.cache.SetStats(ctx, key, s, uc.ttl); err != nil {
			uc.log.Warn("stats cache write failed", "err", err)
		}
	}
	return s, nil
}

func (uc *DashboardStats) compute(ctx context.Context, now time.Time) (reporting.Stats, error) {
	var (
		s   reporting.Stats
		err error
	)

	today := now.Format(timezone.DateLayout)
	day := reporting.DateRange{From: today, To: today}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	month := reporting.DateRange{
		From: firstOfMonth.Format(timezone.DateLayout),
		To:   firstOfMonth.AddDate(0, 1, -1).Format(timezone.DateLayout),
	}

	steps := []func() error{
		func() error { s.AppointmentsToday, err = uc.repo.CountAppointments(ctx, day); return err },
		func() error {
			s.ScheduledToday, err = uc.repo.CountAppointments(ctx, day, string(appointment.StatusScheduled))
			return err
		},
		func() error {
			s.CompletedToday, err = uc.repo.CountAppointments(ctx, day, string(appointment.StatusCompleted))
			return err
		},
		func() error { s.RevenueTodayCents, err = uc.repo.SumRevenue(ctx, day); return err },
		func() error { s.AppointmentsMonth, err = uc.repo.CountAppointments(ctx, month); return err },
		func() error { s.RevenueMonthCents, err = uc.repo.SumRevenue(ctx, month); return err },
		func() error { s.TotalClients, err = uc.repo.CountClients(ctx); return err },
		func() error { s.ActiveBarbers, err = uc.repo.CountActiveBarbers(ctx); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			uc.log.Error("dashboard stats failed", "err", err)
			return reporting.Stats{}, err
		}
	}
	return s, nil
}
