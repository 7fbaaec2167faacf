package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	listBarbers  *ucCatalog.ListBarbers
	listServices *ucCatalog.ListServices
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	loc          *time.Location
}

func NewPublicHandler(
	listBarbers *ucCatalog.ListBarbers,
	listServices *ucCatalog.ListServices,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		listBarbers:  listBarbers,
		listServices: listServices,
		availability: availability,
		create:       create,
		loc:          loc,
	}
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.listBarbers.Execute(c.Request.Context(), false)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]dto.BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.NewBarber(b))
	}
	httpresp.List(c, out)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context(), false)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.NewService(s))
	}
	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")
	serviceIDsStr := c.Query("service_ids")

	if barberIDStr == "" || dateStr == "" || serviceIDsStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro, data e serviços são obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	serviceIDs, err := parseIDList(serviceIDsStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:   uint(barberID),
		Date:       dateStr,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		httperr.FromError(c, err, "availability_failed", "Erro ao calcular horários.")
		return
	}

	httpresp.OK(c, dto.AvailabilityResponse{
		BarberID: uint(barberID),
		Date:     dateStr,
		Slots:    dto.NewSlots(slots, h.loc),
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

// CreateAppointment always answers with the booking response shape, success or not.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BookingResponse{
			Message:   "Dados inválidos.",
			ErrorCode: "invalid_request",
		})
		return
	}

	result, err := h.create.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		status := http.StatusInternalServerError
		if be, ok := httperr.AsBusiness(err); ok {
			status = httperr.StatusFor(be.Kind)
		}
		c.JSON(status, dto.NewBookingResponse(result))
		return
	}

	httpresp.Created(c, dto.NewBookingResponse(result))
}
