package reporting

import (
	"context"
	"testing"
	"time"

	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type mapCache struct {
	items map[string]reporting.Stats
	sets  int
}

func (m *mapCache) GetStats(_ context.Context, key string) (*reporting.Stats, bool, error) {
	s, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (m *mapCache) SetStats(_ context.Context, key string, s reporting.Stats, _ time.Duration) error {
	m.items[key] = s
	m.sets++
	return nil
}

func TestDashboardStats_ComputesAndCaches(t *testing.T) {
	db, err := dbpkg.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	now := func() time.Time { return time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC) }

	b := models.Barber{Name: "Roberto"}
	db.Create(&b)
	c := models.Client{Name: "João", Phone: "31997223898"}
	db.Create(&c)

	rows := []models.Appointment{
		{BarberID: b.ID, ClientID: c.ID, AppointmentDate: "2025-03-10", StartTime: now(), EndTime: now().Add(time.Hour), Status: "completed", TotalPriceCents: 7000},
		{BarberID: b.ID, ClientID: c.ID, AppointmentDate: "2025-03-10", StartTime: now().Add(2 * time.Hour), EndTime: now().Add(3 * time.Hour), Status: "scheduled", TotalPriceCents: 4500},
		{BarberID: b.ID, ClientID: c.ID, AppointmentDate: "2025-03-02", StartTime: now().AddDate(0, 0, -8), EndTime: now().AddDate(0, 0, -8).Add(time.Hour), Status: "completed", TotalPriceCents: 3000},
		{BarberID: b.ID, ClientID: c.ID, AppointmentDate: "2025-02-27", StartTime: now().AddDate(0, 0, -11), EndTime: now().AddDate(0, 0, -11).Add(time.Hour), Status: "completed", TotalPriceCents: 9999},
	}
	for i := range rows {
		if err := db.Omit("Barber", "Client").Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	cache := &mapCache{items: map[string]reporting.Stats{}}
	uc := NewDashboardStats(repository.NewReportingGormRepository(db), cache, time.Minute, time.UTC, now, logging.Discard())

	s, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	want := reporting.Stats{
		AppointmentsToday: 2,
		ScheduledToday:    1,
		CompletedToday:    1,
		RevenueTodayCents: 7000,
		AppointmentsMonth: 3,
		RevenueMonthCents: 10000,
		TotalClients:      1,
		ActiveBarbers:     1,
	}
	if s != want {
		t.Fatalf("got %+v\nwant %+v", s, want)
	}

	// A second call is served from cache.
	db.Exec("DELETE FROM appointments")
	again, _ := uc.Execute(context.Background())
	if again != want || cache.sets != 1 {
		t.Fatalf("expected cached stats, got %+v (sets=%d)", again, cache.sets)
	}
}

func TestListAuditLogs_RejectsBadSince(t *testing.T) {
	db, err := dbpkg.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	uc := NewListAuditLogs(repository.NewReportingGormRepository(db))

	if _, err := uc.Execute(context.Background(), ListAuditLogsInput{Since: "ontem"}); !httperr.IsBusiness(err, "invalid_since") {
		t.Fatalf("expected invalid_since, got %v", err)
	}
}

func TestClampLimit(t *testing.T) {
	for in, want := range map[int]int{0: 100, -3: 100, 20: 20, 501: 500} {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
