package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

// MaxPhotoUploadBytes caps the multipart body of a photo upload.
const MaxPhotoUploadBytes = 8 << 20

type BarberHandler struct {
	list       *ucCatalog.ListBarbers
	commission *ucCatalog.UpdateCommission
	photo      *ucCatalog.UploadBarberPhoto
}

func NewBarberHandler(
	list *ucCatalog.ListBarbers,
	commission *ucCatalog.UpdateCommission,
	photo *ucCatalog.UploadBarberPhoto,
) *BarberHandler {
	return &BarberHandler{list: list, commission: commission, photo: photo}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.list.Execute(c.Request.Context(), true)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]dto.BarberAdminDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.NewBarberAdmin(b))
	}
	httpresp.List(c, out)
}

func (h *BarberHandler) UpdateCommission(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.CommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe as três taxas de comissão.")
		return
	}

	b, err := h.commission.Execute(c.Request.Context(), ucCatalog.UpdateCommissionInput{
		BarberID: id,
		Rates:    req.Rates(),
		ActorID:  middleware.ActorID(c),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_commission", "Erro ao atualizar comissão.")
		return
	}

	httpresp.OK(c, dto.NewBarberAdmin(*b))
}

// UploadPhoto expects a multipart form with the image in the "photo" field.
func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxPhotoUploadBytes)

	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie a imagem no campo 'photo' (até 8MB).")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível ler a imagem.")
		return
	}
	defer f.Close()

	url, err := h.photo.Execute(c.Request.Context(), id, f, middleware.ActorID(c))
	if err != nil {
		httperr.FromError(c, err, "photo_upload_failed", "Erro ao enviar foto.")
		return
	}

	httpresp.OK(c, gin.H{"barber_id": id, "photo_url": url})
}
