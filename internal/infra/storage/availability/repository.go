package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/pkg/dbmetrics"
	"github.com/hairmatch/HM-ReserveService/pkg/psqlbuilder"
)

// pq unique_violation
const pqUniqueViolation = "23505"

var availabilityColumns = []string{
	"id",
	"hairdresser_id",
	"weekday",
	"start_time",
	"end_time",
	"break_start",
	"break_end",
	"created_at",
	"updated_at",
}

// Repository provides access to the weekly working-hours rows.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new availability repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts one working-hours row for a hairdresser.
// A second row for the same (hairdresser, weekday) violates the table's
// unique constraint and is reported as ErrDuplicateWeekday.
func (r *Repository) Create(ctx context.Context, av *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns(
			"hairdresser_id",
			"weekday",
			"start_time",
			"end_time",
			"break_start",
			"break_end",
		).
		Values(
			av.HairdresserID,
			av.Weekday,
			av.StartTime,
			av.EndTime,
			av.BreakStart,
			av.BreakEnd,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateWeekday
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return av, nil
}

// GetByID fetches one availability row by its id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByHairdresserAndWeekday resolves the working hours of a hairdresser
// for one weekday. Returns ErrAvailabilityNotFound when the weekday is not
// configured; callers treat that as "no bookable slots", not a failure.
func (r *Repository) GetByHairdresserAndWeekday(ctx context.Context, hairdresserID int64, weekday domain.Weekday) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("availability").
		Where(squirrel.Eq{"hairdresser_id": hairdresserID, "weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHairdresserAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByHairdresserAndWeekday")
}

// ListByHairdresser returns all configured weekdays for a hairdresser,
// ordered Sunday first.
func (r *Repository) ListByHairdresser(ctx context.Context, hairdresserID int64) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("availability").
		Where(squirrel.Eq{"hairdresser_id": hairdresserID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHairdresser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHairdresser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list, err := r.scanAvailabilities(rows)
	if err != nil {
		return nil, err
	}

	// Weekday is stored as a name, so calendar ordering happens here.
	sort.Slice(list, func(i, j int) bool {
		return list[i].Weekday.Number() < list[j].Weekday.Number()
	})

	return list, nil
}

// Update applies a partial update to an availability row.
// Only non-nil patch fields are written.
func (r *Repository) Update(ctx context.Context, id int64, patch domain.AvailabilityPatch) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("availability").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Weekday != nil {
		updateBuilder = updateBuilder.Set("weekday", *patch.Weekday)
	}
	if patch.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *patch.EndTime)
	}
	if patch.BreakStart != nil {
		updateBuilder = updateBuilder.Set("break_start", *patch.BreakStart)
	}
	if patch.BreakEnd != nil {
		updateBuilder = updateBuilder.Set("break_end", *patch.BreakEnd)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(availabilityColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var av domain.Availability
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&av.HairdresserID,
		&av.Weekday,
		&av.StartTime,
		&av.EndTime,
		&av.BreakStart,
		&av.BreakEnd,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateWeekday
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return &av, nil
}

// Delete removes one availability row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

// DeleteByHairdresser removes the whole weekly schedule of a hairdresser.
// Used by the transactional schedule replacement.
func (r *Repository) DeleteByHairdresser(ctx context.Context, hairdresserID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"hairdresser_id": hairdresserID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByHairdresser - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByHairdresser - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanOne(row *sql.Row, method string) (*domain.Availability, error) {
	var av domain.Availability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&av.ID,
		&av.HairdresserID,
		&av.Weekday,
		&av.StartTime,
		&av.EndTime,
		&av.BreakStart,
		&av.BreakEnd,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan availability: %v", ErrScanRow, method, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return &av, nil
}

func (r *Repository) scanAvailabilities(rows *sql.Rows) ([]*domain.Availability, error) {
	list := make([]*domain.Availability, 0)

	for rows.Next() {
		var av domain.Availability
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&av.ID,
			&av.HairdresserID,
			&av.Weekday,
			&av.StartTime,
			&av.EndTime,
			&av.BreakStart,
			&av.BreakEnd,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAvailabilities - scan row: %v", ErrScanRow, err)
		}

		av.CreatedAt = createdAt.Time
		av.UpdatedAt = updatedAt.Time

		list = append(list, &av)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAvailabilities - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}
