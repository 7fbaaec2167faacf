package appointment

import "github.com/BruksfildServices01/barber-booking/internal/models"

// CommissionRateFor picks the barber's rate tier for a service. Chemical
// services use the chemical tier; every other service uses the service tier.
// The product tier applies to retail sales, which are not booked here.
func CommissionRateFor(b *models.Barber, s *models.Service) float64 {
	if s.IsChemical {
		return b.CommissionRateChemicalService
	}
	return b.CommissionRateService
}

// SnapshotServices freezes price, duration and commission for each service in order.
func SnapshotServices(b *models.Barber, services []models.Service) ([]models.AppointmentService, int64, int) {
	links := make([]models.AppointmentService, 0, len(services))
	var total int64
	var minutes int

	for i := range services {
		s := &services[i]
		links = append(links, models.AppointmentService{
			ServiceID:             s.ID,
			Position:              i,
			ServiceName:           s.Name,
			PriceAtBookingCents:   s.PriceCents,
			DurationMinutes:       s.DurationMinutes,
			CommissionRateApplied: CommissionRateFor(b, s),
		})
		total += s.PriceCents
		minutes += s.DurationMinutes
	}

	return links, total, minutes
}
