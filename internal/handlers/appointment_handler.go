package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	search    *ucAppointment.SearchAppointments
	schedule  *ucAppointment.BarberSchedule
	setStatus *ucAppointment.SetStatus
	confirm   *ucAppointment.ConfirmAppointment
	complete  *ucAppointment.CompleteAppointment
	cancel    *ucAppointment.CancelAppointment
	noShow    *ucAppointment.MarkNoShow
	loc       *time.Location
	now       timezone.Clock
}

func NewAppointmentHandler(
	search *ucAppointment.SearchAppointments,
	schedule *ucAppointment.BarberSchedule,
	setStatus *ucAppointment.SetStatus,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
	noShow *ucAppointment.MarkNoShow,
	loc *time.Location,
	now timezone.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		search:    search,
		schedule:  schedule,
		setStatus: setStatus,
		confirm:   confirm,
		complete:  complete,
		cancel:    cancel,
		noShow:    noShow,
		loc:       loc,
		now:       now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

type CompleteRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) Search(c *gin.Context) {
	aps, err := h.search.Execute(c.Request.Context(), ucAppointment.SearchInput{
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		ClientName:  c.Query("client_name"),
		ClientPhone: c.Query("client_phone"),
		BarberName:  c.Query("barber_name"),
		ServiceName: c.Query("service_name"),
		Status:      c.Query("status"),
		Limit:       queryInt(c, "limit"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_search_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, dto.NewAppointmentListSlice(aps, h.loc))
}

func (h *AppointmentHandler) BarberSchedule(c *gin.Context) {
	barberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = h.now().In(h.loc).Format(timezone.DateLayout)
	}

	aps, err := h.schedule.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_schedule", "Erro ao carregar agenda.")
		return
	}

	httpresp.List(c, dto.NewAppointmentListSlice(aps, h.loc))
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), ucAppointment.SetStatusInput{
		AppointmentID: id,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		ActorID:       middleware.ActorID(c),
	})
	h.respond(c, ap, err)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute, "")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req CompleteRequest
	// body is optional
	_ = c.ShouldBindJSON(&req)
	h.transition(c, h.complete.Execute, req.PaymentMethod)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute, "")
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, h.noShow.Execute, "")
}

type transitionFunc func(context.Context, ucAppointment.TransitionInput) (*models.Appointment, error)

func (h *AppointmentHandler) transition(c *gin.Context, run transitionFunc, payment string) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := run(c.Request.Context(), ucAppointment.TransitionInput{
		AppointmentID: id,
		ActorID:       middleware.ActorID(c),
		PaymentMethod: payment,
	})
	h.respond(c, ap, err)
}

func (h *AppointmentHandler) respond(c *gin.Context, ap *models.Appointment, err error) {
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}
	httpresp.OK(c, dto.NewAppointmentList(ap, h.loc))
}
