package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucReporting "github.com/BruksfildServices01/barber-booking/internal/usecase/reporting"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	list *ucReporting.ListAuditLogs
}

func NewAuditLogsHandler(list *ucReporting.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	in := ucReporting.ListAuditLogsInput{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Since:  c.Query("since"),
		Limit:  queryInt(c, "limit"),
	}

	if s := c.Query("entity_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_entity_id", "Identificador inválido.")
			return
		}
		eid := uint(id)
		in.EntityID = &eid
	}

	logs, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.List(c, dto.NewAuditLogs(logs))
}
