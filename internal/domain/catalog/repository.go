package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barber --------
	ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	UpdateBarberCommission(ctx context.Context, id uint, rates CommissionRates) (*models.Barber, error)
	SetBarberPhoto(ctx context.Context, id uint, url string) error

	// -------- Service --------
	ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// GetServices returns the services in the order of ids and fails with
	// service_not_found when any id is unknown or inactive.
	GetServices(ctx context.Context, ids []uint) ([]models.Service, error)

	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error

	// -------- Working hours --------

	// GetWorkingHours returns nil, nil when the weekday was never configured.
	GetWorkingHours(ctx context.Context, barberID uint, weekday int) (*models.WorkingHours, error)
	ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, barberID uint, days []models.WorkingHours) error
}

// PhotoStore persists an encoded barber photo and returns its public URL.
type PhotoStore interface {
	PutBarberPhoto(ctx context.Context, barberID uint, contentType string, data []byte) (string, error)
}
