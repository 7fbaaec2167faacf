package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListBarbers struct {
	repo catalog.Repository
}

func NewListBarbers(repo catalog.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

// Execute lists barbers by name. The public catalog hides inactive ones.
func (uc *ListBarbers) Execute(ctx context.Context, includeInactive bool) ([]models.Barber, error) {
	return uc.repo.ListBarbers(ctx, !includeInactive)
}

type ListServices struct {
	repo catalog.Repository
}

func NewListServices(repo catalog.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, !includeInactive)
}
