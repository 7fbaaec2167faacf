package catalog

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CommissionRates struct {
	Service  float64
	Product  float64
	Chemical float64
}

func (r CommissionRates) Validate() error {
	for _, v := range []float64{r.Service, r.Product, r.Chemical} {
		if v < 0 || v > 1 {
			return httperr.Validation("invalid_commission_rate", "Comissão deve estar entre 0 e 1.")
		}
	}
	return nil
}

func ValidateService(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return httperr.Validation("invalid_name", "Nome do serviço é obrigatório.")
	}
	if s.PriceCents < 0 {
		return httperr.Validation("invalid_price", "Preço não pode ser negativo.")
	}
	if s.DurationMinutes <= 0 {
		return httperr.Validation("invalid_duration", "Duração deve ser maior que zero.")
	}
	return nil
}

// ValidateWorkingDay checks one weekday row. Inactive rows may omit times.
func ValidateWorkingDay(d models.WorkingHours) error {
	if d.Weekday < 0 || d.Weekday > 6 {
		return httperr.Validation("invalid_weekday", "Dia da semana inválido.")
	}
	if !d.Active {
		return nil
	}

	start, err1 := time.Parse(timezone.TimeLayout, d.StartTime)
	end, err2 := time.Parse(timezone.TimeLayout, d.EndTime)
	if err1 != nil || err2 != nil || !end.After(start) {
		return httperr.Validation("invalid_working_hours", "Horário de trabalho inválido.")
	}

	if d.LunchStart == "" && d.LunchEnd == "" {
		return nil
	}
	ls, err1 := time.Parse(timezone.TimeLayout, d.LunchStart)
	le, err2 := time.Parse(timezone.TimeLayout, d.LunchEnd)
	if err1 != nil || err2 != nil || !le.After(ls) || ls.Before(start) || le.After(end) {
		return httperr.Validation("invalid_lunch_break", "Intervalo de almoço inválido.")
	}
	return nil
}

func ValidateWeek(days []models.WorkingHours) error {
	seen := map[int]bool{}
	for _, d := range days {
		if err := ValidateWorkingDay(d); err != nil {
			return err
		}
		if seen[d.Weekday] {
			return httperr.Validation("duplicate_weekday", "Dia da semana repetido.")
		}
		seen[d.Weekday] = true
	}
	return nil
}
