package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReportingGormRepository struct {
	db *gorm.DB
}

func NewReportingGormRepository(db *gorm.DB) *ReportingGormRepository {
	return &ReportingGormRepository{db: db}
}

func (r *ReportingGormRepository) inRange(ctx context.Context, rg reporting.DateRange) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date <= ?", rg.From, rg.To)
}

func (r *ReportingGormRepository) CountAppointments(
	ctx context.Context,
	rg reporting.DateRange,
	statuses ...string,
) (int64, error) {

	q := r.inRange(ctx, rg)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, classify(err, "", "")
	}
	return n, nil
}

func (r *ReportingGormRepository) SumRevenue(
	ctx context.Context,
	rg reporting.DateRange,
) (int64, error) {

	var total int64
	if err := r.inRange(ctx, rg).
		Where("status = ?", string(appointment.StatusCompleted)).
		Select("COALESCE(SUM(total_price_cents), 0)").
		Scan(&total).Error; err != nil {
		return 0, classify(err, "", "")
	}
	return total, nil
}

func (r *ReportingGormRepository) CountClients(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&n).Error; err != nil {
		return 0, classify(err, "", "")
	}
	return n, nil
}

func (r *ReportingGormRepository) CountActiveBarbers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("active = ?", true).
		Count(&n).Error; err != nil {
		return 0, classify(err, "", "")
	}
	return n, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *ReportingGormRepository) ListClients(
	ctx context.Context,
	query string,
	limit int,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Order("name ASC")

	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, "%"+query+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return clients, nil
}

func (r *ReportingGormRepository) ListAuditLogs(
	ctx context.Context,
	f reporting.AuditFilter,
) ([]models.AuditLog, error) {

	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.Since != nil {
		q = q.Where("created_at >= ?", f.Since.UTC())
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return logs, nil
}

var _ reporting.Repository = (*ReportingGormRepository)(nil)
