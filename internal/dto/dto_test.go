package dto

import (
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

func TestCents_RoundsHalfCents(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{45, 4500},
		{45.5, 4550},
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Cents(tt.in); got != tt.want {
			t.Errorf("Cents(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if Reais(7000) != 70 {
		t.Fatalf("Reais(7000) = %v", Reais(7000))
	}
}

func TestBookingRequest_ToInput(t *testing.T) {
	no := false

	tests := []struct {
		name       string
		req        BookingRequest
		wantDT     string
		autoCreate bool
	}{
		{
			name:       "datetime wins",
			req:        BookingRequest{AppointmentDateTime: "2025-03-10 10:00", Date: "2025-03-11", Time: "11:00"},
			wantDT:     "2025-03-10 10:00",
			autoCreate: true,
		},
		{
			name:       "date and time pair",
			req:        BookingRequest{Date: "2025-03-10", Time: "10:00"},
			wantDT:     "2025-03-10 10:00",
			autoCreate: true,
		},
		{
			name:       "explicit opt out of client creation",
			req:        BookingRequest{AppointmentDateTime: "2025-03-10 10:00", AutoCreateClient: &no},
			wantDT:     "2025-03-10 10:00",
			autoCreate: false,
		},
		{
			name:       "time without date",
			req:        BookingRequest{Time: "10:00"},
			wantDT:     "",
			autoCreate: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.req.ToInput()
			if in.AppointmentDateTime != tt.wantDT {
				t.Fatalf("datetime = %q, want %q", in.AppointmentDateTime, tt.wantDT)
			}
			if in.AutoCreateClient != tt.autoCreate {
				t.Fatalf("auto create = %v", in.AutoCreateClient)
			}
		})
	}
}

func TestNewBookingResponse_FailureCarriesCode(t *testing.T) {
	resp := NewBookingResponse(appointment.BookingResult{
		Code:    "slot_conflict",
		Message: "Horário indisponível.",
	})
	if resp.Success || resp.ErrorCode != "slot_conflict" || resp.AppointmentID != 0 {
		t.Fatalf("unexpected response %+v", resp)
	}

	ok := NewBookingResponse(appointment.BookingResult{
		Success:         true,
		AppointmentID:   3,
		TotalPriceCents: 7000,
		DurationMinutes: 50,
		Code:            "appointment_created",
	})
	if ok.ErrorCode != "" || ok.TotalPrice != 70 {
		t.Fatalf("unexpected response %+v", ok)
	}
}

func TestNewAppointmentList_RendersLocalTime(t *testing.T) {
	brt := time.FixedZone("BRT", -3*3600)
	start := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)

	ap := &models.Appointment{
		ID:              1,
		AppointmentDate: "2025-03-10",
		StartTime:       start,
		EndTime:         start.Add(50 * time.Minute),
		DurationMinutes: 50,
		TotalPriceCents: 7000,
		Status:          "scheduled",
		Client:          models.Client{Name: "Ana", Phone: "11987654321"},
		Barber:          models.Barber{Name: "Roberto"},
		Services: []models.AppointmentService{
			{ServiceID: 1, ServiceName: "Corte"},
			{ServiceID: 2, ServiceName: "Barba"},
		},
	}

	got := NewAppointmentList(ap, brt)

	if got.AppointmentTime != "10:00" || got.EndTime != "10:50" {
		t.Fatalf("times = %s-%s", got.AppointmentTime, got.EndTime)
	}
	if got.ClientPhone != "(11) 98765-4321" {
		t.Fatalf("phone = %q", got.ClientPhone)
	}
	if len(got.ServicesNames) != 2 || got.ServicesNames[1] != "Barba" || got.ServicesIDs[0] != 1 {
		t.Fatalf("services = %v %v", got.ServicesIDs, got.ServicesNames)
	}
	if got.TotalPrice != 70 {
		t.Fatalf("total = %v", got.TotalPrice)
	}
}

func TestNewSlots_FormatsInShopZone(t *testing.T) {
	brt := time.FixedZone("BRT", -3*3600)
	slots := NewSlots([]domain.Slot{
		{Start: time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), DurationMinutes: 30, Available: true},
	}, brt)

	if len(slots) != 1 || slots[0].TimeSlot != "08:00" || !slots[0].Available {
		t.Fatalf("slots = %+v", slots)
	}
	if NewSlots(nil, brt) == nil {
		t.Fatalf("empty slot list must encode as []")
	}
}
