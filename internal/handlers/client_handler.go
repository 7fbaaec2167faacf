package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucReporting "github.com/BruksfildServices01/barber-booking/internal/usecase/reporting"
)

type ClientHandler struct {
	list *ucReporting.ListClients
}

func NewClientHandler(list *ucReporting.ListClients) *ClientHandler {
	return &ClientHandler{list: list}
}

// ======================================================
// LIST CLIENTS (ADMIN)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	clients, err := h.list.Execute(c.Request.Context(), query, queryInt(c, "limit"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, dto.NewClients(clients))
}
