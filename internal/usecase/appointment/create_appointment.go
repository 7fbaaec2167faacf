package appointment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string `validate:"required,max=100"`
	ClientPhone string `validate:"required,br_mobile"`
	ClientEmail string `validate:"omitempty,email,max=100"`

	BarberID uint `validate:"required"`

	// "YYYY-MM-DD HH:MM" in the shop timezone.
	AppointmentDateTime string `validate:"required"`

	ServiceIDs []uint `validate:"required,min=1"`
	Note       string `validate:"max=255"`

	AutoCreateClient bool
}

// BookingResult is always populated, also on failure, so callers can render
// Message directly.
type BookingResult struct {
	Success         bool
	AppointmentID   uint
	ClientID        uint
	TotalPriceCents int64
	DurationMinutes int
	Code            string
	Message         string

	Appointment *models.Appointment
}

var fieldRules = map[string]struct{ code, message string }{
	"ClientName":          {"invalid_name", "Informe o nome do cliente."},
	"ClientPhone":         {"invalid_phone", "Telefone deve estar no formato (XX) 9XXXX-XXXX."},
	"ClientEmail":         {"invalid_email", "E-mail inválido."},
	"BarberID":            {"invalid_barber", "Selecione um barbeiro."},
	"AppointmentDateTime": {"invalid_datetime", "Informe a data e o horário."},
	"ServiceIDs":          {"empty_services", "Selecione ao menos um serviço."},
	"Note":                {"invalid_note", "Observação muito longa."},
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	catalog  catalog.Repository
	ledger   domain.Ledger
	locks    domain.Locker
	audit    *audit.Dispatcher
	validate *validator.Validate
	cfg      SchedulingConfig
	now      timezone.Clock
	log      *slog.Logger

	// Optional MX lookup for client e-mails.
	CheckEmailDomain func(email string) bool
}

func NewCreateAppointment(
	catalog catalog.Repository,
	ledger domain.Ledger,
	locks domain.Locker,
	audit *audit.Dispatcher,
	cfg SchedulingConfig,
	now timezone.Clock,
	log *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		catalog:  catalog,
		ledger:   ledger,
		locks:    locks,
		audit:    audit,
		validate: validators.New(),
		cfg:      cfg,
		now:      now,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (BookingResult, error) {

	ap, err := uc.create(ctx, in)
	if err != nil {
		if httperr.IsKind(err, httperr.KindTransient) || !isBusiness(err) {
			uc.log.Error("create appointment failed", "barber_id", in.BarberID, "err", err)
		} else {
			uc.log.Warn("create appointment rejected", "barber_id", in.BarberID, "err", err)
		}
		return failure(err), err
	}

	uc.log.Info("appointment created",
		"appointment_id", ap.ID,
		"barber_id", ap.BarberID,
		"client_id", ap.ClientID,
		"date", ap.AppointmentDate,
	)

	return BookingResult{
		Success:         true,
		AppointmentID:   ap.ID,
		ClientID:        ap.ClientID,
		TotalPriceCents: ap.TotalPriceCents,
		DurationMinutes: ap.DurationMinutes,
		Code:            "appointment_created",
		Message:         "Agendamento realizado com sucesso!",
		Appointment:     ap,
	}, nil
}

func (uc *CreateAppointment) create(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Entrada
	// --------------------------------------------------
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.Note = strings.TrimSpace(in.Note)

	if err := uc.validate.Struct(in); err != nil {
		if field, _, ok := validators.FirstError(err); ok {
			if rule, found := fieldRules[field]; found {
				return nil, httperr.Validation(rule.code, rule.message)
			}
		}
		return nil, httperr.Validation("invalid_input", "Dados inválidos.")
	}
	if err := uniqueIDs(in.ServiceIDs); err != nil {
		return nil, err
	}
	if in.ClientEmail != "" && uc.CheckEmailDomain != nil && !uc.CheckEmailDomain(in.ClientEmail) {
		return nil, httperr.Validation("invalid_email_domain", "Domínio de e-mail inválido.")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	loc := uc.cfg.location()
	start, err := timezone.ParseDateTime(in.AppointmentDateTime, loc)
	if err != nil {
		return nil, httperr.Validation("invalid_datetime", "Data ou horário inválido.")
	}
	if start.Before(uc.now().In(loc)) {
		return nil, httperr.Validation("date_in_past", "Não é possível agendar no passado.")
	}

	// --------------------------------------------------
	// 3️⃣ Barbeiro e serviços
	// --------------------------------------------------
	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbeiro não encontrado.")
	}

	services, err := uc.catalog.GetServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	links, total, minutes := domain.SnapshotServices(barber, services)
	end := start.Add(time.Duration(minutes) * time.Minute)

	// --------------------------------------------------
	// 4️⃣ Expediente + almoço
	// --------------------------------------------------
	day := timezone.StartOfDay(start)
	wh, err := uc.catalog.GetWorkingHours(ctx, barber.ID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	window, err := domain.ResolveWindow(day, wh, uc.cfg.DefaultHours)
	if err != nil {
		return nil, err
	}
	if !window.Contains(domain.Interval{Start: start, End: end}) {
		return nil, httperr.Validation("outside_working_hours", "Horário fora do expediente do barbeiro.")
	}

	// --------------------------------------------------
	// 5️⃣ Seção crítica por barbeiro + data
	// --------------------------------------------------
	date := day.Format(timezone.DateLayout)

	release, err := uc.locks.Acquire(ctx, domain.SlotKey(barber.ID, date))
	if err != nil {
		return nil, err
	}
	defer release()

	ap := &models.Appointment{
		BarberID:        barber.ID,
		AppointmentDate: date,
		StartTime:       start.UTC(),
		EndTime:         end.UTC(),
		DurationMinutes: minutes,
		Status:          string(domain.InitialStatus()),
		TotalPriceCents: total,
		Note:            in.Note,
		Services:        links,
	}

	created, err := uc.ledger.Book(ctx, domain.Draft{
		Client: domain.ClientRef{
			Name:       in.ClientName,
			Phone:      validators.PhoneDigits(in.ClientPhone),
			Email:      in.ClientEmail,
			AutoCreate: in.AutoCreateClient,
		},
		Appointment: ap,
	})
	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_conflict",
				Entity:   "barber",
				EntityID: &barber.ID,
				Metadata: map[string]any{"date": date, "start": start.Format(timezone.TimeLayout)},
			})
		}
		return nil, err
	}
	created.Barber = *barber

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  "client:" + created.Client.Phone,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"barber_id":         created.BarberID,
			"client_id":         created.ClientID,
			"date":              created.AppointmentDate,
			"start":             start.Format(timezone.TimeLayout),
			"total_price_cents": created.TotalPriceCents,
		},
	})

	return created, nil
}

func isBusiness(err error) bool {
	_, ok := httperr.AsBusiness(err)
	return ok
}

func failure(err error) BookingResult {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = "Não foi possível concluir o agendamento."
		}
		return BookingResult{Code: be.Code, Message: msg}
	}
	return BookingResult{
		Code:    "internal_error",
		Message: "Erro interno ao criar agendamento. Tente novamente.",
	}
}
