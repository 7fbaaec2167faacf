package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	list   *ucCatalog.ListServices
	create *ucCatalog.CreateService
	update *ucCatalog.UpdateService
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
) *ServiceHandler {
	return &ServiceHandler{list: list, create: create, update: update}
}

// --------- Handlers ---------

// List includes inactive services unless ?active=true.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), !queryBool(c, "active"))
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

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), req.ToInput(middleware.ActorID(c)))
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, dto.NewService(*svc))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), req.ToInput(id, middleware.ActorID(c)))
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, dto.NewService(*svc))
}
