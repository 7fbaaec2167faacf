package dto

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// BookingRequest accepts either appointment_datetime or the date + time pair.
type BookingRequest struct {
	ClientName          string `json:"client_name"`
	ClientPhone         string `json:"client_phone"`
	ClientEmail         string `json:"client_email"`
	BarberID            uint   `json:"barber_id"`
	AppointmentDateTime string `json:"appointment_datetime"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	ServiceIDs          []uint `json:"service_ids"`
	Note                string `json:"note"`
	AutoCreateClient    *bool  `json:"auto_create_client"`
}

func (r BookingRequest) ToInput() appointment.CreateAppointmentInput {
	dt := strings.TrimSpace(r.AppointmentDateTime)
	if dt == "" && r.Date != "" && r.Time != "" {
		dt = strings.TrimSpace(r.Date) + " " + strings.TrimSpace(r.Time)
	}

	autoCreate := true
	if r.AutoCreateClient != nil {
		autoCreate = *r.AutoCreateClient
	}

	return appointment.CreateAppointmentInput{
		ClientName:          strings.TrimSpace(r.ClientName),
		ClientPhone:         strings.TrimSpace(r.ClientPhone),
		ClientEmail:         strings.TrimSpace(r.ClientEmail),
		BarberID:            r.BarberID,
		AppointmentDateTime: dt,
		ServiceIDs:          r.ServiceIDs,
		Note:                strings.TrimSpace(r.Note),
		AutoCreateClient:    autoCreate,
	}
}

type BookingResponse struct {
	Success         bool    `json:"success"`
	AppointmentID   uint    `json:"appointment_id,omitempty"`
	ClientID        uint    `json:"client_id,omitempty"`
	TotalPrice      float64 `json:"total_price"`
	DurationMinutes int     `json:"duration_minutes"`
	Message         string  `json:"message"`
	ErrorCode       string  `json:"error_code,omitempty"`
}

func NewBookingResponse(r appointment.BookingResult) BookingResponse {
	resp := BookingResponse{
		Success:         r.Success,
		AppointmentID:   r.AppointmentID,
		ClientID:        r.ClientID,
		TotalPrice:      Reais(r.TotalPriceCents),
		DurationMinutes: r.DurationMinutes,
		Message:         r.Message,
	}
	if !r.Success {
		resp.ErrorCode = r.Code
	}
	return resp
}

// ======================================================
// AVAILABILITY
// ======================================================

type SlotDTO struct {
	TimeSlot        string `json:"time_slot"`
	Available       bool   `json:"available"`
	DurationMinutes int    `json:"duration_minutes"`
}

type AvailabilityResponse struct {
	BarberID uint      `json:"barber_id"`
	Date     string    `json:"date"`
	Slots    []SlotDTO `json:"slots"`
}

func NewSlots(slots []domain.Slot, loc *time.Location) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{
			TimeSlot:        s.Start.In(loc).Format(timezone.TimeLayout),
			Available:       s.Available,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return out
}
