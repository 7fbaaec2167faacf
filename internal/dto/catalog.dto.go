package dto

import (
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	usecase "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

type BarberDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	Active   bool   `json:"active"`
}

// BarberAdminDTO adds the commission rates, which are not public.
type BarberAdminDTO struct {
	BarberDTO
	Phone                         string  `json:"phone"`
	Email                         string  `json:"email"`
	CommissionRateService         float64 `json:"commission_rate_service"`
	CommissionRateProduct         float64 `json:"commission_rate_product"`
	CommissionRateChemicalService float64 `json:"commission_rate_chemical_service"`
}

func NewBarber(b models.Barber) BarberDTO {
	return BarberDTO{ID: b.ID, Name: b.Name, PhotoURL: b.PhotoURL, Active: b.Active}
}

func NewBarberAdmin(b models.Barber) BarberAdminDTO {
	return BarberAdminDTO{
		BarberDTO:                     NewBarber(b),
		Phone:                         b.Phone,
		Email:                         b.Email,
		CommissionRateService:         b.CommissionRateService,
		CommissionRateProduct:         b.CommissionRateProduct,
		CommissionRateChemicalService: b.CommissionRateChemicalService,
	}
}

type ServiceDTO struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsChemical      bool    `json:"is_chemical"`
	Active          bool    `json:"active"`
}

func NewService(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           Reais(s.PriceCents),
		DurationMinutes: s.DurationMinutes,
		IsChemical:      s.IsChemical,
		Active:          s.Active,
	}
}

// ======================================================
// ADMIN REQUESTS
// ======================================================

type CommissionRequest struct {
	Service  *float64 `json:"commission_rate_service" binding:"required"`
	Product  *float64 `json:"commission_rate_product" binding:"required"`
	Chemical *float64 `json:"commission_rate_chemical_service" binding:"required"`
}

func (r CommissionRequest) Rates() catalog.CommissionRates {
	return catalog.CommissionRates{Service: *r.Service, Product: *r.Product, Chemical: *r.Chemical}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsChemical      bool    `json:"is_chemical"`
	Active          *bool   `json:"active"`
}

func (r CreateServiceRequest) ToInput(actorID string) usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      Cents(r.Price),
		DurationMinutes: r.DurationMinutes,
		IsChemical:      r.IsChemical,
		Active:          r.Active,
		ActorID:         actorID,
	}
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	IsChemical      *bool    `json:"is_chemical"`
	Active          *bool    `json:"active"`
}

func (r UpdateServiceRequest) ToInput(id uint, actorID string) usecase.UpdateServiceInput {
	in := usecase.UpdateServiceInput{
		ServiceID:       id,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		IsChemical:      r.IsChemical,
		Active:          r.Active,
		ActorID:         actorID,
	}
	if r.Price != nil {
		cents := Cents(*r.Price)
		in.PriceCents = &cents
	}
	return in
}

// ======================================================
// WORKING HOURS
// ======================================================

type WorkingDayDTO struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start,omitempty"`
	LunchEnd   string `json:"lunch_end,omitempty"`
	Active     bool   `json:"active"`
	Configured bool   `json:"configured"`
}

func NewWorkingDays(days []usecase.WorkingDay) []WorkingDayDTO {
	out := make([]WorkingDayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, WorkingDayDTO{
			Weekday:    d.Weekday,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
			Active:     d.Active,
			Configured: d.Configured,
		})
	}
	return out
}

type WorkingHoursRequest struct {
	Days []WorkingDayDTO `json:"days" binding:"required"`
}

func (r WorkingHoursRequest) ToModels(barberID uint) []models.WorkingHours {
	out := make([]models.WorkingHours, 0, len(r.Days))
	for _, d := range r.Days {
		out = append(out, models.WorkingHours{
			BarberID:   barberID,
			Weekday:    d.Weekday,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
			Active:     d.Active,
		})
	}
	return out
}
