package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 500
)

type SearchInput struct {
	StartDate   string
	EndDate     string
	ClientName  string
	ClientPhone string
	BarberName  string
	ServiceName string
	Status      string
	Limit       int
}

type SearchAppointments struct {
	ledger domain.Ledger
	cfg    SchedulingConfig
}

func NewSearchAppointments(ledger domain.Ledger, cfg SchedulingConfig) *SearchAppointments {
	return &SearchAppointments{ledger: ledger, cfg: cfg}
}

func (uc *SearchAppointments) Execute(
	ctx context.Context,
	in SearchInput,
) ([]models.Appointment, error) {

	loc := uc.cfg.location()
	for _, d := range []string{in.StartDate, in.EndDate} {
		if d == "" {
			continue
		}
		if _, err := timezone.ParseDate(d, loc); err != nil {
			return nil, httperr.Validation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		}
	}
	if in.StartDate != "" && in.EndDate != "" && in.EndDate < in.StartDate {
		return nil, httperr.Validation("invalid_date_range", "Data final anterior à inicial.")
	}

	if in.Status != "" {
		if _, ok := domain.ParseStatus(in.Status); !ok {
			return nil, httperr.Validation("invalid_status", "Status inválido.")
		}
	}

	limit := in.Limit
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	f := domain.SearchFilter{
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		ClientName:  strings.TrimSpace(in.ClientName),
		BarberName:  strings.TrimSpace(in.BarberName),
		ServiceName: strings.TrimSpace(in.ServiceName),
		Status:      in.Status,
		Limit:       limit,
	}
	if in.ClientPhone != "" {
		f.ClientPhone = validators.PhoneDigits(in.ClientPhone)
		if f.ClientPhone == "" {
			return nil, httperr.Validation("invalid_phone", "Telefone inválido.")
		}
	}

	var out []models.Appointment
	err := readWithRetry(ctx, uc.cfg, func() (err error) {
		out, err = uc.ledger.Search(ctx, f)
		return err
	})
	return out, err
}
