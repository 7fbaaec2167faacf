package repository

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCatalog_GetServicesKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	a := seedService(t, db, "Corte", 4500, 30)
	b := seedService(t, db, "Barba", 2500, 20)

	got, err := repo.GetServices(ctx, []uint{b.ID, a.ID})
	if err != nil {
		t.Fatalf("get services: %v", err)
	}
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("order not preserved: %+v", got)
	}

	if _, err := repo.GetServices(ctx, []uint{a.ID, 999}); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestCatalog_CreateInactiveService(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	s := &models.Service{Name: "Relaxamento", PriceCents: 8000, DurationMinutes: 60, Active: false}
	if err := repo.CreateService(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	active, _ := repo.ListServices(ctx, true)
	if len(active) != 0 {
		t.Fatalf("inactive service listed as active: %+v", active)
	}
	if _, err := repo.GetServices(ctx, []uint{s.ID}); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("inactive service must not be bookable, got %v", err)
	}
}

func TestCatalog_CommissionAndWorkingHours(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	b := seedBarber(t, db, "Roberto")

	updated, err := repo.UpdateBarberCommission(ctx, b.ID, catalog.CommissionRates{Service: 0.3, Product: 0.1, Chemical: 0})
	if err != nil {
		t.Fatalf("update commission: %v", err)
	}
	if updated.CommissionRateService != 0.3 || updated.CommissionRateChemicalService != 0 {
		t.Fatalf("rates not applied: %+v", updated)
	}
	reloaded, _ := repo.GetBarber(ctx, b.ID)
	if reloaded.CommissionRateChemicalService != 0 {
		t.Fatalf("zero rate not persisted: %+v", reloaded)
	}

	if _, err := repo.UpdateBarberCommission(ctx, 999, catalog.CommissionRates{}); !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}

	week := []models.WorkingHours{
		{Weekday: 1, StartTime: "09:00", EndTime: "18:00", Active: true},
		{Weekday: 0, Active: false},
	}
	if err := repo.ReplaceWorkingHours(ctx, b.ID, week); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.ReplaceWorkingHours(ctx, b.ID, week[:1]); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	rows, _ := repo.ListWorkingHours(ctx, b.ID)
	if len(rows) != 1 || rows[0].Weekday != 1 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	missing, err := repo.GetWorkingHours(ctx, b.ID, 3)
	if err != nil || missing != nil {
		t.Fatalf("unconfigured weekday should be nil, nil; got %v, %v", missing, err)
	}
}
