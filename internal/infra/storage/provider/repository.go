package provider

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/pkg/psqlbuilder"
	"github.com/medpoint/MP-SchedulingService/pkg/txmanager"
)

// Repository репозиторий для работы с врачами и их доступностью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает врача со специальностями, страховками, окнами доступности
// и активными записями, пересекающимися с периодом [from, to)
func (r *Repository) GetByID(ctx context.Context, id int64, from, to time.Time) (*domain.Provider, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.name",
		"p.rating",
		"COALESCE(array_agg(DISTINCT ps.specialty) FILTER (WHERE ps.specialty IS NOT NULL), '{}')",
		"COALESCE(array_agg(DISTINCT pi.insurance_plan) FILTER (WHERE pi.insurance_plan IS NOT NULL), '{}')",
	).
		From("providers p").
		LeftJoin("provider_specialties ps ON ps.provider_id = p.id").
		LeftJoin("provider_insurances pi ON pi.provider_id = p.id").
		Where(squirrel.Eq{"p.id": id}).
		GroupBy("p.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Provider
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Rating,
		pq.Array(&p.Specialties),
		pq.Array(&p.AcceptedInsurances),
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	if err := r.loadSchedule(ctx, &p, from, to); err != nil {
		return nil, err
	}

	return &p, nil
}

// ListBySpecialty получает врачей указанной специальности (без учёта регистра)
// с окнами доступности и активными записями в периоде [from, to).
// Период подбирается вызывающей стороной так, чтобы покрыть всё окно поиска
// движка планирования.
func (r *Repository) ListBySpecialty(ctx context.Context, specialty string, from, to time.Time) ([]*domain.Provider, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.name",
		"p.rating",
		"COALESCE(array_agg(DISTINCT ps.specialty) FILTER (WHERE ps.specialty IS NOT NULL), '{}')",
		"COALESCE(array_agg(DISTINCT pi.insurance_plan) FILTER (WHERE pi.insurance_plan IS NOT NULL), '{}')",
	).
		From("providers p").
		Join("provider_specialties fs ON fs.provider_id = p.id AND LOWER(fs.specialty) = LOWER(?)", specialty).
		LeftJoin("provider_specialties ps ON ps.provider_id = p.id").
		LeftJoin("provider_insurances pi ON pi.provider_id = p.id").
		GroupBy("p.id").
		OrderBy("p.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Rating,
			pq.Array(&p.Specialties),
			pq.Array(&p.AcceptedInsurances),
		); err != nil {
			return nil, fmt.Errorf("%w: ListBySpecialty - scan provider: %v", ErrScanRow, err)
		}
		providers = append(providers, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - iterate rows: %v", ErrExecQuery, err)
	}

	for _, p := range providers {
		if err := r.loadSchedule(ctx, p, from, to); err != nil {
			return nil, err
		}
	}

	return providers, nil
}

// GetAvailability получает окна доступности врача
func (r *Repository) GetAvailability(ctx context.Context, providerID int64) ([]domain.AvailabilityWindow, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "provider_id", "start_time", "end_time").
		From("provider_availability").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err := rows.Scan(&w.ID, &w.ProviderID, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("%w: GetAvailability - scan window: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - iterate rows: %v", ErrExecQuery, err)
	}

	return windows, nil
}

// ReplaceAvailability заменяет окна доступности врача.
// Вызывается внутри транзакции, открытой сервисом.
func (r *Repository) ReplaceAvailability(ctx context.Context, providerID int64, windows []domain.AvailabilityWindow) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	for _, w := range windows {
		if !w.IsValid() {
			return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidWindow,
				w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
		}
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("provider_availability").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("provider_availability").
		Columns("provider_id", "start_time", "end_time")
	for _, w := range windows {
		insertBuilder = insertBuilder.Values(providerID, w.Start, w.End)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadSchedule загружает окна доступности и активные записи врача за период
func (r *Repository) loadSchedule(ctx context.Context, p *domain.Provider, from, to time.Time) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	// Окна доступности, пересекающиеся с периодом
	windowsQuery, windowsArgs, err := psqlbuilder.Select("id", "provider_id", "start_time", "end_time").
		From("provider_availability").
		Where(squirrel.Eq{"provider_id": p.ID}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSchedule - build windows query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, windowsQuery, windowsArgs...)
	if err != nil {
		return fmt.Errorf("%w: loadSchedule - execute windows select: %v", ErrExecQuery, err)
	}

	p.Availability = p.Availability[:0]
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err := rows.Scan(&w.ID, &w.ProviderID, &w.Start, &w.End); err != nil {
			rows.Close()
			return fmt.Errorf("%w: loadSchedule - scan window: %v", ErrScanRow, err)
		}
		p.Availability = append(p.Availability, w)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("%w: loadSchedule - iterate windows: %v", ErrExecQuery, err)
	}
	rows.Close()

	// Активные записи, пересекающиеся с периодом
	apptQuery, apptArgs, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"patient_id",
		"start_time",
		"duration_minutes",
		"priority",
		"type",
		"status",
	).
		From("appointments").
		Where(squirrel.Eq{"provider_id": p.ID}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Expr("start_time + duration_minutes * INTERVAL '1 minute' > ?", from)).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSchedule - build appointments query: %v", ErrBuildQuery, err)
	}

	apptRows, err := executor.QueryContext(ctx, apptQuery, apptArgs...)
	if err != nil {
		return fmt.Errorf("%w: loadSchedule - execute appointments select: %v", ErrExecQuery, err)
	}
	defer apptRows.Close()

	p.Appointments = p.Appointments[:0]
	for apptRows.Next() {
		var appt domain.Appointment
		var durationMinutes int
		if err := apptRows.Scan(
			&appt.ID,
			&appt.ProviderID,
			&appt.PatientID,
			&appt.StartTime,
			&durationMinutes,
			&appt.Priority,
			&appt.Type,
			&appt.Status,
		); err != nil {
			return fmt.Errorf("%w: loadSchedule - scan appointment: %v", ErrScanRow, err)
		}
		appt.Duration = time.Duration(durationMinutes) * time.Minute
		p.Appointments = append(p.Appointments, &appt)
	}
	if err := apptRows.Err(); err != nil {
		return fmt.Errorf("%w: loadSchedule - iterate appointments: %v", ErrExecQuery, err)
	}

	return nil
}
