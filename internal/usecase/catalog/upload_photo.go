package catalog

import (
	"context"
	"io"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/media"
)

type UploadBarberPhoto struct {
	repo    catalog.Repository
	store   catalog.PhotoStore
	maxSide int
	audit   *audit.Dispatcher
	log     *slog.Logger
}

// NewUploadBarberPhoto accepts a nil store; uploads then fail with photo_storage_disabled.
func NewUploadBarberPhoto(
	repo catalog.Repository,
	store catalog.PhotoStore,
	maxSide int,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *UploadBarberPhoto {
	return &UploadBarberPhoto{
		repo:    repo,
		store:   store,
		maxSide: maxSide,
		audit:   audit,
		log:     log,
	}
}

func (uc *UploadBarberPhoto) Execute(
	ctx context.Context,
	barberID uint,
	upload io.Reader,
	actorID string,
) (string, error) {

	if uc.store == nil {
		return "", httperr.Validation("photo_storage_disabled", "Armazenamento de fotos não configurado.")
	}

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return "", err
	}

	data, err := media.NormalizePhoto(upload, uc.maxSide, media.DefaultQuality)
	if err != nil {
		return "", err
	}

	url, err := uc.store.PutBarberPhoto(ctx, barberID, media.ContentTypeWebP, data)
	if err != nil {
		uc.log.Error("photo upload failed", "barber_id", barberID, "err", err)
		return "", err
	}

	if err := uc.repo.SetBarberPhoto(ctx, barberID, url); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "barber_photo_updated",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: map[string]any{"url": url, "bytes": len(data)},
	})

	return url, nil
}
