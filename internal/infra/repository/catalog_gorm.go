package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *CatalogGormRepository) ListBarbers(
	ctx context.Context,
	onlyActive bool,
) ([]models.Barber, error) {

	q := r.db.WithContext(ctx).Order("name ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return barbers, nil
}

func (r *CatalogGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, classify(err, "barber_not_found", "Barbeiro não encontrado.")
	}
	return &b, nil
}

func (r *CatalogGormRepository) UpdateBarberCommission(
	ctx context.Context,
	id uint,
	rates catalog.CommissionRates,
) (*models.Barber, error) {

	var b models.Barber
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}
		b.CommissionRateService = rates.Service
		b.CommissionRateProduct = rates.Product
		b.CommissionRateChemicalService = rates.Chemical
		return tx.Model(&b).
			Select("commission_rate_service", "commission_rate_product", "commission_rate_chemical_service").
			Updates(&b).Error
	})
	if err != nil {
		return nil, classify(err, "barber_not_found", "Barbeiro não encontrado.")
	}
	return &b, nil
}

func (r *CatalogGormRepository) SetBarberPhoto(
	ctx context.Context,
	id uint,
	url string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", id).
		Update("photo_url", url)
	if res.Error != nil {
		return classify(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundErr("barber_not_found", "Barbeiro não encontrado.")
	}
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	onlyActive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Order("name ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, classify(err, "service_not_found", "Serviço não encontrado.")
	}
	return &s, nil
}

func (r *CatalogGormRepository) GetServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var found []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Find(&found).Error; err != nil {
		return nil, classify(err, "", "")
	}

	byID := make(map[uint]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, httperr.NotFoundErr("service_not_found", "Serviço não encontrado.")
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {

	active := s.Active
	return classify(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		// gorm skips zero values with a default tag on insert.
		if !active {
			s.Active = false
			return tx.Model(s).Update("active", false).Error
		}
		return nil
	}), "", "")
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":             s.Name,
			"description":      s.Description,
			"price_cents":      s.PriceCents,
			"duration_minutes": s.DurationMinutes,
			"is_chemical":      s.IsChemical,
			"active":           s.Active,
		})
	if res.Error != nil {
		return classify(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundErr("service_not_found", "Serviço não encontrado.")
	}
	return nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *CatalogGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, classify(err, "", "")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *CatalogGormRepository) ListWorkingHours(
	ctx context.Context,
	barberID uint,
) ([]models.WorkingHours, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return rows, nil
}

func (r *CatalogGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	barberID uint,
	days []models.WorkingHours,
) error {

	return classify(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for i := range days {
			days[i].ID = 0
			days[i].BarberID = barberID
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	}), "", "")
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
