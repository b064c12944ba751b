package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	"github.com/m04kA/HSP-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/HSP-ScheduleService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pqUniqueViolation = "23505"

var calendarColumns = []string{
	"id",
	"date",
	"category_id",
	"is_available",
	"max_appointments",
	"created_at",
	"updated_at",
}

// Repository репозиторий календарных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарных дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает календарную дату.
// Уникальность активной записи на пару (date, category_id) обеспечивается
// частичным уникальным индексом — нарушение транслируется в ErrDuplicateDate.
func (r *Repository) Create(ctx context.Context, date *domain.CalendarDate) (*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_dates").
		Columns(
			"date",
			"category_id",
			"is_available",
			"max_appointments",
		).
		Values(
			date.Date,
			date.CategoryID,
			date.IsAvailable,
			date.MaxAppointments,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&date.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	date.CreatedAt = createdAt.Time
	date.UpdatedAt = updatedAt.Time

	return date, nil
}

// GetByID получает календарную дату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(calendarColumns...).
		From("calendar_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ResolveForDate находит календарную запись, действующую для пары (дата, категория).
// Приоритет разрешения как у иерархических конфигураций:
//  1. запись для конкретной категории;
//  2. глобальная запись (category_id IS NULL).
//
// Если вызывается внутри транзакции, строка блокируется FOR UPDATE —
// на этой блокировке сериализуется резервирование вместимости даты.
func (r *Repository) ResolveForDate(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
	// 1. Пробуем запись для конкретной категории
	if categoryID != nil {
		entry, err := r.getByDateAndScope(ctx, date, categoryID)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, ErrDateNotFound) {
			return nil, err
		}
	}

	// 2. Откатываемся на глобальную запись
	return r.getByDateAndScope(ctx, date, nil)
}

func (r *Repository) getByDateAndScope(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(calendarColumns...).
		From("calendar_dates").
		Where(squirrel.Eq{"date": date})

	if categoryID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	// Блокируем строку на время транзакции резервирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByDateAndScope - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "getByDateAndScope")
}

// ListEligible получает даты, открытые для бронирования: is_available = true,
// date >= fromDate, область видимости по правилу категорий (nil = всё).
// Прошедшие даты не удаляются, но в выдачу не попадают.
func (r *Repository) ListEligible(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(calendarColumns...).
		From("calendar_dates").
		Where(squirrel.Eq{"is_available": true}).
		Where(squirrel.GtOrEq{"date": fromDate}).
		OrderBy("date ASC")

	// Правило области видимости: конкретная категория видит свою + глобальную,
	// запрос без категории видит всё
	if categoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"category_id": nil},
			squirrel.Eq{"category_id": *categoryID},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligible - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligible - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDates(rows)
}

// Update обновляет флаг доступности и вместимость даты
func (r *Repository) Update(ctx context.Context, id int64, isAvailable bool, maxAppointments int) (*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_dates").
		Set("is_available", isAvailable).
		Set("max_appointments", maxAppointments).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(calendarColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "Update")
}

// Delete удаляет календарную дату.
// Слоты даты НЕ удаляются каскадно — они остаются для аудита
// и становятся недостижимыми через выдачу доступных дат.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDateNotFound
	}

	return nil
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.CalendarDate, error) {
	var date domain.CalendarDate
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&date.ID,
		&date.Date,
		&date.CategoryID,
		&date.IsAvailable,
		&date.MaxAppointments,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan calendar date: %v", ErrScanRow, op, err)
	}

	date.CreatedAt = createdAt.Time
	date.UpdatedAt = updatedAt.Time

	return &date, nil
}

func (r *Repository) scanDates(rows *sql.Rows) ([]*domain.CalendarDate, error) {
	dates := make([]*domain.CalendarDate, 0)

	for rows.Next() {
		var date domain.CalendarDate
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&date.ID,
			&date.Date,
			&date.CategoryID,
			&date.IsAvailable,
			&date.MaxAppointments,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDates - scan row: %v", ErrScanRow, err)
		}

		date.CreatedAt = createdAt.Time
		date.UpdatedAt = updatedAt.Time

		dates = append(dates, &date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}
