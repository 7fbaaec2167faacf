package reporting

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Stats is the dashboard snapshot. Revenue only counts completed appointments.
type Stats struct {
	AppointmentsToday int64 `json:"appointments_today"`
	ScheduledToday    int64 `json:"scheduled_today"`
	CompletedToday    int64 `json:"completed_today"`
	RevenueTodayCents int64 `json:"revenue_today_cents"`

	AppointmentsMonth int64 `json:"appointments_month"`
	RevenueMonthCents int64 `json:"revenue_month_cents"`

	TotalClients  int64 `json:"total_clients"`
	ActiveBarbers int64 `json:"active_barbers"`
}

// DateRange is inclusive on both ends, using YYYY-MM-DD dates.
type DateRange struct {
	From string
	To   string
}

type Repository interface {
	CountAppointments(ctx context.Context, r DateRange, statuses ...string) (int64, error)
	SumRevenue(ctx context.Context, r DateRange) (int64, error)
	CountClients(ctx context.Context) (int64, error)
	CountActiveBarbers(ctx context.Context) (int64, error)

	ListClients(ctx context.Context, query string, limit int) ([]models.Client, error)
	ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, error)
}

type AuditFilter struct {
	Action   string
	Entity   string
	EntityID *uint
	Since    *time.Time
	Limit    int
}

// Cache keeps recent stats; implementations may be nil-backed.
type Cache interface {
	GetStats(ctx context.Context, key string) (*Stats, bool, error)
	SetStats(ctx context.Context, key string, s Stats, ttl time.Duration) error
}
