package models

import "time"

type Barber struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// Fractions in [0,1].
	CommissionRateService         float64 `gorm:"not null;default:0" json:"commission_rate_service"`
	CommissionRateProduct         float64 `gorm:"not null;default:0" json:"commission_rate_product"`
	CommissionRateChemicalService float64 `gorm:"not null;default:0" json:"commission_rate_chemical_service"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
