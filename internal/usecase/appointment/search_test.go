package appointment

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestSearch_ValidatesAndClampsLimit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := NewSearchAppointments(e.ledger, e.cfg)

	for _, at := range []string{"2025-03-10 10:00", "2025-03-10 08:00", "2025-03-11 09:00"} {
		if _, err := e.scheduler().Execute(ctx, e.booking("(31) 99722-3898", at)); err != nil {
			t.Fatalf("book %s: %v", at, err)
		}
	}

	got, err := uc.Execute(ctx, SearchInput{ClientPhone: "(31) 99722-3898", Limit: 10000})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results", len(got))
	}
	if !got[0].StartTime.Before(got[1].StartTime) || !got[1].StartTime.Before(got[2].StartTime) {
		t.Fatalf("results not in chronological order")
	}

	tests := []struct {
		name string
		in   SearchInput
		code string
	}{
		{"bad date", SearchInput{StartDate: "03/10/2025"}, "invalid_date"},
		{"inverted range", SearchInput{StartDate: "2025-03-11", EndDate: "2025-03-10"}, "invalid_date_range"},
		{"bad status", SearchInput{Status: "done"}, "invalid_status"},
		{"phone without digits", SearchInput{ClientPhone: "abc"}, "invalid_phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Execute(ctx, tt.in); !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestBarberSchedule(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.scheduler().Execute(ctx, e.booking("(31) 99722-3898", "2025-03-10 10:00")); err != nil {
		t.Fatalf("book: %v", err)
	}

	uc := NewBarberSchedule(e.catalog, e.ledger, e.cfg)
	day, err := uc.Execute(ctx, e.barber.ID, "2025-03-10")
	if err != nil || len(day) != 1 {
		t.Fatalf("schedule: %v, %d entries", err, len(day))
	}

	if _, err := uc.Execute(ctx, 999, "2025-03-10"); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected barber not found, got %v", err)
	}
}

func TestReadWithRetry_RetriesTransientOnly(t *testing.T) {
	cfg := SchedulingConfig{ReadRetryAttempts: 3}
	calls := 0

	err := readWithRetry(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return httperr.Transient("store_unavailable", "", nil)
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}

	calls = 0
	err = readWithRetry(context.Background(), cfg, func() error {
		calls++
		return httperr.NotFoundErr("barber_not_found", "")
	})
	if calls != 1 || !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("non-transient errors must not be retried: calls=%d err=%v", calls, err)
	}
}
