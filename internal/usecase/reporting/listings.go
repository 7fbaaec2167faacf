package reporting

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	}
	return n
}

type ListClients struct {
	repo reporting.Repository
}

func NewListClients(repo reporting.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context, query string, limit int) ([]models.Client, error) {
	return uc.repo.ListClients(ctx, query, clampLimit(limit))
}

type ListAuditLogsInput struct {
	Action   string
	Entity   string
	EntityID *uint
	Since    string
	Limit    int
}

type ListAuditLogs struct {
	repo reporting.Repository
}

func NewListAuditLogs(repo reporting.Repository) *ListAuditLogs {
	return &ListAuditLogs{repo: repo}
}

func (uc *ListAuditLogs) Execute(ctx context.Context, in ListAuditLogsInput) ([]models.AuditLog, error) {
	f := reporting.AuditFilter{
		Action:   in.Action,
		Entity:   in.Entity,
		EntityID: in.EntityID,
		Limit:    clampLimit(in.Limit),
	}
	if in.Since != "" {
		t, err := time.Parse(time.RFC3339, in.Since)
		if err != nil {
			return nil, httperr.Validation("invalid_since", "Parâmetro 'since' deve estar em RFC3339.")
		}
		f.Since = &t
	}
	return uc.repo.ListAuditLogs(ctx, f)
}
