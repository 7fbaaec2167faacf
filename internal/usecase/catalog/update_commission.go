package catalog

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdateCommissionInput struct {
	BarberID uint
	Rates    catalog.CommissionRates
	ActorID  string
}

// UpdateCommission changes a barber's rates. Booked appointments keep the
// rate captured at booking time.
type UpdateCommission struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewUpdateCommission(repo catalog.Repository, audit *audit.Dispatcher, log *slog.Logger) *UpdateCommission {
	return &UpdateCommission{repo: repo, audit: audit, log: log}
}

func (uc *UpdateCommission) Execute(ctx context.Context, in UpdateCommissionInput) (*models.Barber, error) {
	if err := in.Rates.Validate(); err != nil {
		return nil, err
	}

	b, err := uc.repo.UpdateBarberCommission(ctx, in.BarberID, in.Rates)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   "barber_commission_updated",
		Entity:   "barber",
		EntityID: &b.ID,
		Metadata: in.Rates,
	})
	uc.log.Info("barber commission updated", "barber_id", b.ID)

	return b, nil
}
