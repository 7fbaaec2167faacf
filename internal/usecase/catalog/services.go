package catalog

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateServiceInput struct {
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
	IsChemical      bool
	Active          *bool
	ActorID         string
}

type CreateService struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewCreateService(repo catalog.Repository, audit *audit.Dispatcher, log *slog.Logger) *CreateService {
	return &CreateService{repo: repo, audit: audit, log: log}
}

func (uc *CreateService) Execute(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	s := &models.Service{
		Name:            in.Name,
		Description:     in.Description,
		PriceCents:      in.PriceCents,
		DurationMinutes: in.DurationMinutes,
		IsChemical:      in.IsChemical,
		Active:          in.Active == nil || *in.Active,
	}
	if err := catalog.ValidateService(s); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
	})
	uc.log.Info("service created", "service_id", s.ID)

	return s, nil
}

// ======================================================
// UPDATE (partial)
// ======================================================

type UpdateServiceInput struct {
	ServiceID       uint
	Name            *string
	Description     *string
	PriceCents      *int64
	DurationMinutes *int
	IsChemical      *bool
	Active          *bool
	ActorID         string
}

// UpdateService edits the catalog only; appointments keep their snapshots.
type UpdateService struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewUpdateService(repo catalog.Repository, audit *audit.Dispatcher, log *slog.Logger) *UpdateService {
	return &UpdateService{repo: repo, audit: audit, log: log}
}

func (uc *UpdateService) Execute(ctx context.Context, in UpdateServiceInput) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.PriceCents != nil {
		s.PriceCents = *in.PriceCents
	}
	if in.DurationMinutes != nil {
		s.DurationMinutes = *in.DurationMinutes
	}
	if in.IsChemical != nil {
		s.IsChemical = *in.IsChemical
	}
	if in.Active != nil {
		s.Active = *in.Active
	}

	if err := catalog.ValidateService(s); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})
	uc.log.Info("service updated", "service_id", s.ID)

	return s, nil
}
