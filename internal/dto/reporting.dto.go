package dto

import (
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type StatsDTO struct {
	AppointmentsToday int64   `json:"appointments_today"`
	ScheduledToday    int64   `json:"scheduled_today"`
	CompletedToday    int64   `json:"completed_today"`
	RevenueToday      float64 `json:"revenue_today"`
	AppointmentsMonth int64   `json:"appointments_month"`
	RevenueMonth      float64 `json:"revenue_month"`
	TotalClients      int64   `json:"total_clients"`
	ActiveBarbers     int64   `json:"active_barbers"`
}

func NewStats(s reporting.Stats) StatsDTO {
	return StatsDTO{
		AppointmentsToday: s.AppointmentsToday,
		ScheduledToday:    s.ScheduledToday,
		CompletedToday:    s.CompletedToday,
		RevenueToday:      Reais(s.RevenueTodayCents),
		AppointmentsMonth: s.AppointmentsMonth,
		RevenueMonth:      Reais(s.RevenueMonthCents),
		TotalClients:      s.TotalClients,
		ActiveBarbers:     s.ActiveBarbers,
	}
}

type ClientDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func NewClients(clients []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientDTO{
			ID:    c.ID,
			Name:  c.Name,
			Phone: validators.FormatPhone(c.Phone),
			Email: c.Email,
		})
	}
	return out
}

type AuditLogDTO struct {
	ID        uint            `json:"id"`
	ActorID   string          `json:"actor_id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *uint           `json:"entity_id"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewAuditLogs(logs []models.AuditLog) []AuditLogDTO {
	out := make([]AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		d := AuditLogDTO{
			ID:        l.ID,
			ActorID:   l.ActorID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			CreatedAt: l.CreatedAt,
		}
		if l.Metadata != "" && json.Valid([]byte(l.Metadata)) {
			d.Metadata = json.RawMessage(l.Metadata)
		}
		out = append(out, d)
	}
	return out
}
