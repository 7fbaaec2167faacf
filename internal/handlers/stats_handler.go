package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucReporting "github.com/BruksfildServices01/barber-booking/internal/usecase/reporting"
)

type StatsHandler struct {
	stats *ucReporting.DashboardStats
}

func NewStatsHandler(stats *ucReporting.DashboardStats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	s, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}
	httpresp.OK(c, dto.NewStats(s))
}
