package models

// AppointmentService freezes the catalog values a service had when it was booked.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"-"`
	AppointmentID uint `gorm:"not null;index" json:"appointment_id"`
	ServiceID     uint `gorm:"not null;index" json:"service_id"`
	Position      int  `gorm:"not null" json:"position"`

	ServiceName           string  `gorm:"size:100;not null" json:"service_name"`
	PriceAtBookingCents   int64   `gorm:"not null" json:"price_at_booking_cents"`
	DurationMinutes       int     `gorm:"not null" json:"duration_minutes"`
	CommissionRateApplied float64 `gorm:"not null" json:"commission_rate_applied"`
}
