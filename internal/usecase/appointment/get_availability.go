package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type AvailabilityInput struct {
	BarberID   uint
	Date       string
	ServiceIDs []uint
}

type GetAvailability struct {
	catalog catalog.Repository
	ledger  domain.Ledger
	cfg     SchedulingConfig
	now     timezone.Clock
	log     *slog.Logger
}

func NewGetAvailability(
	catalog catalog.Repository,
	ledger domain.Ledger,
	cfg SchedulingConfig,
	now timezone.Clock,
	log *slog.Logger,
) *GetAvailability {
	return &GetAvailability{
		catalog: catalog,
		ledger:  ledger,
		cfg:     cfg,
		now:     now,
		log:     log,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.Slot, error) {

	if err := uniqueIDs(in.ServiceIDs); err != nil {
		return nil, err
	}

	loc := uc.cfg.location()
	day, err := timezone.ParseDate(in.Date, loc)
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
	}

	now := uc.now().In(loc)
	today := timezone.StartOfDay(now)
	if day.Before(today) {
		return nil, httperr.Validation("date_in_past", "Não é possível consultar datas passadas.")
	}

	// --------------------------------------------------
	// Catalog
	// --------------------------------------------------
	var (
		barber   *models.Barber
		services []models.Service
		wh       *models.WorkingHours
	)
	if err := readWithRetry(ctx, uc.cfg, func() (err error) {
		barber, err = uc.catalog.GetBarber(ctx, in.BarberID)
		return err
	}); err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbeiro não encontrado.")
	}

	if err := readWithRetry(ctx, uc.cfg, func() (err error) {
		services, err = uc.catalog.GetServices(ctx, in.ServiceIDs)
		return err
	}); err != nil {
		return nil, err
	}

	if err := readWithRetry(ctx, uc.cfg, func() (err error) {
		wh, err = uc.catalog.GetWorkingHours(ctx, barber.ID, int(day.Weekday()))
		return err
	}); err != nil {
		return nil, err
	}

	window, err := domain.ResolveWindow(day, wh, uc.cfg.DefaultHours)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Ledger
	// --------------------------------------------------
	date := day.Format(timezone.DateLayout)

	var busy []domain.Interval
	if err := readWithRetry(ctx, uc.cfg, func() (err error) {
		busy, err = uc.ledger.BlockingIntervals(ctx, barber.ID, date)
		return err
	}); err != nil {
		uc.log.Error("availability read failed", "barber_id", barber.ID, "date", date, "err", err)
		return nil, err
	}

	var minutes int
	for _, s := range services {
		minutes += s.DurationMinutes
	}

	var notBefore time.Time
	if day.Equal(today) {
		notBefore = now
	}

	return domain.ComputeSlots(domain.SlotParams{
		Window:    window,
		Duration:  time.Duration(minutes) * time.Minute,
		Step:      uc.cfg.Granularity,
		Busy:      busy,
		NotBefore: notBefore,
	}), nil
}
