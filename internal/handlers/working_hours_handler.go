package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

type WorkingHoursHandler struct {
	get     *ucCatalog.GetWorkingHours
	replace *ucCatalog.ReplaceWorkingHours
}

func NewWorkingHoursHandler(get *ucCatalog.GetWorkingHours, replace *ucCatalog.ReplaceWorkingHours) *WorkingHoursHandler {
	return &WorkingHoursHandler{get: get, replace: replace}
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	days, err := h.get.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_working_hours", "Erro ao carregar horários.")
		return
	}

	httpresp.OK(c, gin.H{"barber_id": barberID, "days": dto.NewWorkingDays(days)})
}

// Update replaces the whole week; weekdays left out fall back to the shop default.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.replace.Execute(c.Request.Context(), barberID, req.ToModels(barberID), middleware.ActorID(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_working_hours", "Erro ao salvar horários.")
		return
	}

	h.Get(c)
}
