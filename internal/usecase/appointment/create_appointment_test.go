package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCreateAppointment_Success(t *testing.T) {
	e := newEnv(t)

	res, err := e.scheduler().Execute(context.Background(), e.booking("(31) 99722-3898", "2025-03-10 10:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.Success || res.AppointmentID == 0 || res.ClientID == 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.TotalPriceCents != 7000 || res.DurationMinutes != 50 {
		t.Fatalf("total=%d duration=%d", res.TotalPriceCents, res.DurationMinutes)
	}

	var ap models.Appointment
	e.db.Preload("Services").First(&ap, res.AppointmentID)
	if ap.Status != "scheduled" || ap.AppointmentDate != "2025-03-10" {
		t.Fatalf("stored %+v", ap)
	}
	if ap.Services[0].CommissionRateApplied != 0.4 {
		t.Fatalf("commission snapshot %v", ap.Services[0].CommissionRateApplied)
	}
}

func TestCreateAppointment_UnformattedPhoneIsValidationResponse(t *testing.T) {
	e := newEnv(t)

	res, err := e.scheduler().Execute(context.Background(), e.booking("31997223898", "2025-03-10 10:00"))

	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if res.Success || res.Code != "invalid_phone" || res.Message == "" {
		t.Fatalf("expected a renderable failure, got %+v", res)
	}
}

func TestCreateAppointment_Rejections(t *testing.T) {
	e := newEnv(t)
	uc := e.scheduler()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(in *CreateAppointmentInput)
		code   string
	}{
		{"empty name", func(in *CreateAppointmentInput) { in.ClientName = "  " }, "invalid_name"},
		{"no services", func(in *CreateAppointmentInput) { in.ServiceIDs = nil }, "empty_services"},
		{"duplicate service", func(in *CreateAppointmentInput) { in.ServiceIDs = []uint{e.corte.ID, e.corte.ID} }, "duplicate_service"},
		{"bad email", func(in *CreateAppointmentInput) { in.ClientEmail = "not-an-email" }, "invalid_email"},
		{"past", func(in *CreateAppointmentInput) { in.AppointmentDateTime = "2025-03-01 09:00" }, "date_in_past"},
		{"garbage datetime", func(in *CreateAppointmentInput) { in.AppointmentDateTime = "amanhã" }, "invalid_datetime"},
		{"after closing", func(in *CreateAppointmentInput) { in.AppointmentDateTime = "2025-03-10 20:40" }, "outside_working_hours"},
		{"unknown barber", func(in *CreateAppointmentInput) { in.BarberID = 999 }, "barber_not_found"},
		{"unknown service", func(in *CreateAppointmentInput) { in.ServiceIDs = []uint{999} }, "service_not_found"},
		{"unknown client", func(in *CreateAppointmentInput) { in.AutoCreateClient = false }, "client_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := e.booking("(31) 99722-3898", "2025-03-10 10:00")
			tt.mutate(&in)

			res, err := uc.Execute(ctx, in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
			if res.Success || res.Code != tt.code {
				t.Fatalf("result %+v", res)
			}
		})
	}

	var n int64
	e.db.Model(&models.Appointment{}).Count(&n)
	if n != 0 {
		t.Fatalf("rejected bookings wrote %d appointments", n)
	}
	e.db.Model(&models.Client{}).Count(&n)
	if n != 0 {
		t.Fatalf("rejected bookings wrote %d clients", n)
	}
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	e := newEnv(t)
	uc := e.scheduler()

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			phone := "(31) 9" + string(rune('0'+i)) + "000-0000"
			_, errs[i] = uc.Execute(context.Background(), e.booking(phone, "2025-03-10 14:00"))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsKind(err, httperr.KindConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != n-1 {
		t.Fatalf("ok=%d conflicts=%d, want 1 and %d", ok, conflicts, n-1)
	}

	var stored int64
	e.db.Model(&models.Appointment{}).Count(&stored)
	if stored != 1 {
		t.Fatalf("stored %d appointments", stored)
	}
}

func TestCreateAppointment_ConcurrentNewPhoneSharesClient(t *testing.T) {
	e := newEnv(t)
	uc := e.scheduler()

	starts := []string{"2025-03-10 08:00", "2025-03-10 09:00", "2025-03-10 10:00", "2025-03-10 11:00", "2025-03-10 14:00"}

	var wg sync.WaitGroup
	results := make([]BookingResult, len(starts))
	errs := make([]error, len(starts))
	for i, at := range starts {
		wg.Add(1)
		go func(i int, at string) {
			defer wg.Done()
			results[i], errs[i] = uc.Execute(context.Background(), e.booking("(31) 99722-3898", at))
		}(i, at)
	}
	wg.Wait()

	for i := range starts {
		if errs[i] != nil {
			t.Fatalf("booking %d: %v", i, errs[i])
		}
		if results[i].ClientID != results[0].ClientID {
			t.Fatalf("booking %d used client %d, want %d", i, results[i].ClientID, results[0].ClientID)
		}
	}

	var clients int64
	e.db.Model(&models.Client{}).Count(&clients)
	if clients != 1 {
		t.Fatalf("expected exactly one client, got %d", clients)
	}
}

func TestCreateAppointment_EmailDomainCheck(t *testing.T) {
	e := newEnv(t)
	uc := e.scheduler()
	uc.CheckEmailDomain = func(string) bool { return false }

	in := e.booking("(31) 99722-3898", "2025-03-10 10:00")
	in.ClientEmail = "cliente@dominio-inexistente.test"

	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_email_domain") {
		t.Fatalf("expected invalid_email_domain, got %v", err)
	}
}
