package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// BarberSchedule lists one barber's appointments on a date, every status included.
type BarberSchedule struct {
	catalog catalog.Repository
	ledger  domain.Ledger
	cfg     SchedulingConfig
}

func NewBarberSchedule(catalog catalog.Repository, ledger domain.Ledger, cfg SchedulingConfig) *BarberSchedule {
	return &BarberSchedule{catalog: catalog, ledger: ledger, cfg: cfg}
}

func (uc *BarberSchedule) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	day, err := timezone.ParseDate(date, uc.cfg.location())
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
	}

	if _, err := uc.catalog.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	var out []models.Appointment
	err = readWithRetry(ctx, uc.cfg, func() (err error) {
		out, err = uc.ledger.ListForDay(ctx, barberID, day.Format(timezone.DateLayout))
		return err
	})
	return out, err
}
