package catalog

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// WorkingDay is one weekday of the effective schedule. Configured is false
// when the barber never set that weekday and the shop default applies.
type WorkingDay struct {
	models.WorkingHours
	Configured bool
}

type GetWorkingHours struct {
	repo     catalog.Repository
	defaults appointment.DefaultHours
}

func NewGetWorkingHours(repo catalog.Repository, defaults appointment.DefaultHours) *GetWorkingHours {
	return &GetWorkingHours{repo: repo, defaults: defaults}
}

// Execute returns all seven weekdays, Sunday first.
func (uc *GetWorkingHours) Execute(ctx context.Context, barberID uint) ([]WorkingDay, error) {
	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListWorkingHours(ctx, barberID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]models.WorkingHours, len(rows))
	for _, r := range rows {
		byDay[r.Weekday] = r
	}

	week := make([]WorkingDay, 0, 7)
	for d := 0; d < 7; d++ {
		if r, ok := byDay[d]; ok {
			week = append(week, WorkingDay{WorkingHours: r, Configured: true})
			continue
		}
		week = append(week, WorkingDay{WorkingHours: models.WorkingHours{
			BarberID:  barberID,
			Weekday:   d,
			StartTime: uc.defaults.Open,
			EndTime:   uc.defaults.Close,
			Active:    true,
		}})
	}
	return week, nil
}

type ReplaceWorkingHours struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewReplaceWorkingHours(repo catalog.Repository, audit *audit.Dispatcher, log *slog.Logger) *ReplaceWorkingHours {
	return &ReplaceWorkingHours{repo: repo, audit: audit, log: log}
}

func (uc *ReplaceWorkingHours) Execute(
	ctx context.Context,
	barberID uint,
	days []models.WorkingHours,
	actorID string,
) error {

	if err := catalog.ValidateWeek(days); err != nil {
		return err
	}
	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return err
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, barberID, days); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "working_hours_updated",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: map[string]any{"days": len(days)},
	})
	uc.log.Info("working hours replaced", "barber_id", barberID, "days", len(days))

	return nil
}
