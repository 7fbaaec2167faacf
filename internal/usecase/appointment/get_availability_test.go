package appointment

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestGetAvailability_Roberto(t *testing.T) {
	e := newEnv(t)

	slots, err := e.availability().Execute(context.Background(), AvailabilityInput{
		BarberID:   e.barber.ID,
		Date:       "2025-03-10",
		ServiceIDs: []uint{e.corte.ID, e.barba.ID},
	})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	if len(slots) == 0 {
		t.Fatalf("no slots")
	}
	if got := slots[0].Start.Format("15:04"); got != "08:00" || !slots[0].Available {
		t.Fatalf("first slot = %s available=%v", got, slots[0].Available)
	}
	for _, s := range slots {
		if s.Start.Format("15:04") == "20:40" {
			t.Fatalf("20:40 returned although 20:40+50 passes 21:00")
		}
		if s.DurationMinutes != 50 {
			t.Fatalf("slot duration %d, want 50", s.DurationMinutes)
		}
	}
}

func TestGetAvailability_BookingMarksSlotsUnavailable(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.scheduler().Execute(ctx, e.booking("(31) 99722-3898", "2025-03-10 10:00"))
	if err != nil || !res.Success {
		t.Fatalf("booking failed: %+v %v", res, err)
	}

	slots, err := e.availability().Execute(ctx, AvailabilityInput{
		BarberID:   e.barber.ID,
		Date:       "2025-03-10",
		ServiceIDs: []uint{e.corte.ID, e.barba.ID},
	})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	state := map[string]bool{}
	for _, s := range slots {
		state[s.Start.Format("15:04")] = s.Available
	}
	for _, hm := range []string{"09:15", "09:30", "09:45", "10:00", "10:15", "10:30", "10:45"} {
		if state[hm] {
			t.Errorf("%s overlaps 10:00-10:50 and must be unavailable", hm)
		}
	}
	for _, hm := range []string{"09:00", "11:00"} {
		if !state[hm] {
			t.Errorf("%s should stay available", hm)
		}
	}
}

func TestGetAvailability_Validation(t *testing.T) {
	e := newEnv(t)
	uc := e.availability()
	ctx := context.Background()

	tests := []struct {
		name string
		in   AvailabilityInput
		kind httperr.Kind
		code string
	}{
		{"past date", AvailabilityInput{BarberID: e.barber.ID, Date: "2025-02-28", ServiceIDs: []uint{e.corte.ID}}, httperr.KindValidation, "date_in_past"},
		{"bad date", AvailabilityInput{BarberID: e.barber.ID, Date: "10/03/2025", ServiceIDs: []uint{e.corte.ID}}, httperr.KindValidation, "invalid_date"},
		{"no services", AvailabilityInput{BarberID: e.barber.ID, Date: "2025-03-10"}, httperr.KindValidation, "empty_services"},
		{"unknown barber", AvailabilityInput{BarberID: 999, Date: "2025-03-10", ServiceIDs: []uint{e.corte.ID}}, httperr.KindNotFound, "barber_not_found"},
		{"unknown service", AvailabilityInput{BarberID: e.barber.ID, Date: "2025-03-10", ServiceIDs: []uint{999}}, httperr.KindNotFound, "service_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.in)
			if !httperr.IsKind(err, tt.kind) || !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s/%s, got %v", tt.kind, tt.code, err)
			}
		})
	}
}

func TestGetAvailability_TodayHidesPastStarts(t *testing.T) {
	e := newEnv(t)

	slots, err := e.availability().Execute(context.Background(), AvailabilityInput{
		BarberID:   e.barber.ID,
		Date:       "2025-03-01",
		ServiceIDs: []uint{e.corte.ID},
	})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	for _, s := range slots {
		before := s.Start.Before(fixedNow())
		if before && s.Available {
			t.Fatalf("%s is in the past but available", s.Start.Format("15:04"))
		}
		if !before && !s.Available {
			t.Fatalf("%s should be available", s.Start.Format("15:04"))
		}
	}
}

func TestGetAvailability_ClosedWeekday(t *testing.T) {
	e := newEnv(t)
	// 2025-03-09 is a Sunday.
	closed := []models.WorkingHours{{Weekday: 0, Active: false}}
	if err := e.catalog.ReplaceWorkingHours(context.Background(), e.barber.ID, closed); err != nil {
		t.Fatalf("set hours: %v", err)
	}

	slots, err := e.availability().Execute(context.Background(), AvailabilityInput{
		BarberID:   e.barber.ID,
		Date:       "2025-03-09",
		ServiceIDs: []uint{e.corte.ID},
	})
	if err != nil {
		t.Fatalf("closed day is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}
