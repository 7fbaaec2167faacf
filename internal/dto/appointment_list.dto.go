package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type AppointmentListDTO struct {
	ID       uint `json:"id"`
	ClientID uint `json:"client_id"`
	BarberID uint `json:"barber_id"`

	AppointmentDate     string `json:"appointment_date"`
	AppointmentTime     string `json:"appointment_time"`
	AppointmentDateTime string `json:"appointment_datetime"`
	EndTime             string `json:"end_time"`

	ServicesIDs   []uint   `json:"services_ids"`
	ServicesNames []string `json:"services_names"`

	BarberName  string `json:"barber_name"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	Status          string  `json:"status"`
	TotalPrice      float64 `json:"total_price"`
	DurationMinutes int     `json:"duration_minutes"`
	Note            string  `json:"note"`
	PaymentMethod   string  `json:"payment_method"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// NewAppointmentList expects Client, Barber and Services preloaded; times render in loc.
func NewAppointmentList(ap *models.Appointment, loc *time.Location) AppointmentListDTO {
	start := ap.StartTime.In(loc)

	ids := make([]uint, 0, len(ap.Services))
	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		ids = append(ids, s.ServiceID)
		names = append(names, s.ServiceName)
	}

	return AppointmentListDTO{
		ID:       ap.ID,
		ClientID: ap.ClientID,
		BarberID: ap.BarberID,

		AppointmentDate:     ap.AppointmentDate,
		AppointmentTime:     start.Format(timezone.TimeLayout),
		AppointmentDateTime: start.Format(time.RFC3339),
		EndTime:             ap.EndTime.In(loc).Format(timezone.TimeLayout),

		ServicesIDs:   ids,
		ServicesNames: names,

		BarberName:  ap.Barber.Name,
		ClientName:  ap.Client.Name,
		ClientPhone: validators.FormatPhone(ap.Client.Phone),

		Status:          ap.Status,
		TotalPrice:      Reais(ap.TotalPriceCents),
		DurationMinutes: ap.DurationMinutes,
		Note:            ap.Note,
		PaymentMethod:   ap.PaymentMethod,

		ConfirmedAt: ap.ConfirmedAt,
		CompletedAt: ap.CompletedAt,
		CancelledAt: ap.CancelledAt,
	}
}

func NewAppointmentListSlice(aps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentList(&aps[i], loc))
	}
	return out
}
