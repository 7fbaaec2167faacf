package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestLifecycle_LinearPath(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Complete(ap, "", now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("scheduled -> completed must be rejected, got %v", err)
	}
	if err := Confirm(ap, now); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ap.ConfirmedAt == nil {
		t.Fatalf("confirmed_at not set")
	}
	if err := Complete(ap, "pix", now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.PaymentMethod != "pix" {
		t.Fatalf("unexpected state %+v", ap)
	}
	if err := Cancel(ap, now); err == nil {
		t.Fatalf("completed appointment must not be cancelled")
	}
	if err := MarkNoShow(ap); err == nil {
		t.Fatalf("completed appointment is terminal")
	}
}

func TestComplete_RejectsUnknownPayment(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	err := Complete(ap, "boleto", time.Now())
	if !httperr.IsBusiness(err, "invalid_payment_method") {
		t.Fatalf("expected invalid_payment_method, got %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status changed on rejected completion")
	}
}

func TestOverride_AnyDirection(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusCancelled)}

	if err := Override(ap, StatusCompleted, "money", now); err != nil {
		t.Fatalf("override: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("override not applied: %+v", ap)
	}
	if err := Override(ap, Status("archived"), "", now); !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("unknown status must be a validation error, got %v", err)
	}
}

func TestReblocks(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusCancelled, StatusScheduled, true},
		{StatusNoShow, StatusCompleted, true},
		{StatusScheduled, StatusConfirmed, false},
		{StatusConfirmed, StatusCancelled, false},
		{StatusCancelled, StatusNoShow, false},
	}
	for _, tt := range tests {
		if got := Reblocks(tt.from, tt.to); got != tt.want {
			t.Errorf("Reblocks(%s,%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSnapshotServices_CommissionTier(t *testing.T) {
	b := &models.Barber{
		CommissionRateService:         0.4,
		CommissionRateProduct:         0.1,
		CommissionRateChemicalService: 0.5,
	}
	services := []models.Service{
		{ID: 1, Name: "Corte", PriceCents: 4500, DurationMinutes: 30},
		{ID: 2, Name: "Luzes", PriceCents: 12000, DurationMinutes: 20, IsChemical: true},
	}

	links, total, minutes := SnapshotServices(b, services)

	if total != 16500 || minutes != 50 {
		t.Fatalf("total=%d minutes=%d, want 16500/50", total, minutes)
	}
	if links[0].CommissionRateApplied != 0.4 || links[1].CommissionRateApplied != 0.5 {
		t.Fatalf("wrong tiers: %+v", links)
	}
	if links[1].Position != 1 || links[1].ServiceName != "Luzes" {
		t.Fatalf("order or name lost: %+v", links[1])
	}
}
