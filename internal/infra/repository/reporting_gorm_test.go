package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestReporting_CountsAndRevenue(t *testing.T) {
	db := newTestDB(t)
	ledger := NewAppointmentGormRepository(db, time.Second)
	repo := NewReportingGormRepository(db)
	ctx := context.Background()

	b := seedBarber(t, db, "Roberto")
	inactive := models.Barber{Name: "Zé"}
	db.Create(&inactive)
	db.Model(&inactive).Update("active", false)

	s := seedService(t, db, "Corte", 4500, 30)

	done, err := ledger.Book(ctx, draftAt(b, []models.Service{s}, "31997223898", clock(9, 0)))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := ledger.Transition(ctx, done.ID, func(ap *models.Appointment) error {
		return domain.Override(ap, domain.StatusCompleted, "pix", time.Now())
	}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := ledger.Book(ctx, draftAt(b, []models.Service{s}, "31988887777", clock(10, 0))); err != nil {
		t.Fatalf("book: %v", err)
	}

	today := reporting.DateRange{From: "2025-03-10", To: "2025-03-10"}

	all, _ := repo.CountAppointments(ctx, today)
	scheduled, _ := repo.CountAppointments(ctx, today, string(domain.StatusScheduled))
	revenue, err := repo.SumRevenue(ctx, today)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	clients, _ := repo.CountClients(ctx)
	barbers, _ := repo.CountActiveBarbers(ctx)

	if all != 2 || scheduled != 1 {
		t.Fatalf("all=%d scheduled=%d", all, scheduled)
	}
	if revenue != 4500 {
		t.Fatalf("revenue must only count completed, got %d", revenue)
	}
	if clients != 2 || barbers != 1 {
		t.Fatalf("clients=%d barbers=%d", clients, barbers)
	}

	empty, _ := repo.SumRevenue(ctx, reporting.DateRange{From: "2024-01-01", To: "2024-01-31"})
	if empty != 0 {
		t.Fatalf("empty range revenue = %d", empty)
	}
}

func TestReporting_ListClientsAndAudit(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportingGormRepository(db)
	ctx := context.Background()

	db.Create(&models.Client{Name: "Maria", Phone: "31988887777"})
	db.Create(&models.Client{Name: "João", Phone: "31997223898"})

	clients, err := repo.ListClients(ctx, "7223", 10)
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "João" {
		t.Fatalf("unexpected clients %+v", clients)
	}

	id := uint(7)
	db.Create(&models.AuditLog{Action: "appointment_created", Entity: "appointment", EntityID: &id})
	db.Create(&models.AuditLog{Action: "appointment_cancelled", Entity: "appointment", EntityID: &id})

	logs, err := repo.ListAuditLogs(ctx, reporting.AuditFilter{Action: "appointment_cancelled"})
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	if len(logs) != 1 || *logs[0].EntityID != 7 {
		t.Fatalf("unexpected logs %+v", logs)
	}
}
