package reserve

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/pkg/dbmetrics"
	"github.com/hairmatch/HM-ReserveService/pkg/psqlbuilder"
)

var reserveColumns = []string{
	"id",
	"customer_id",
	"hairdresser_id",
	"service_id",
	"start_time",
	"duration_minutes",
	"service_name",
	"service_price",
	"created_at",
}

// Repository provides access to customer reserves.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new reserve repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reserve. Always called inside the booking
// transaction, together with the paired agenda insert.
func (r *Repository) Create(ctx context.Context, res *domain.Reserve) (*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reserves").
		Columns(
			"customer_id",
			"hairdresser_id",
			"service_id",
			"start_time",
			"duration_minutes",
			"service_name",
			"service_price",
		).
		Values(
			res.CustomerID,
			res.HairdresserID,
			res.ServiceID,
			res.StartTime,
			res.DurationMinutes,
			res.ServiceName,
			res.ServicePrice,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID fetches one reserve by its id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reserveColumns...).
		From("reserves").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reserve
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.CustomerID,
		&res.HairdresserID,
		&res.ServiceID,
		&res.StartTime,
		&res.DurationMinutes,
		&res.ServiceName,
		&res.ServicePrice,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReserveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reserve: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// List returns reserves, optionally filtered by customer, ordered by
// start time.
func (r *Repository) List(ctx context.Context, customerID *int64) ([]*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reserveColumns...).
		From("reserves").
		OrderBy("start_time ASC")

	if customerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *customerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReserves(rows)
}

// ListOverlapping returns the customer's reserves that intersect the
// half-open interval [start, end). The end of a stored reserve is
// derived from its denormalized duration, so no external lookup is
// needed for the self-double-booking check.
//
// When called inside a transaction the rows are locked with FOR UPDATE.
func (r *Repository) ListOverlapping(ctx context.Context, customerID int64, start, end time.Time) ([]*domain.Reserve, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reserveColumns...).
		From("reserves").
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Expr("start_time + make_interval(mins => duration_minutes) > ?", start)).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReserves(rows)
}

// Delete removes one reserve.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reserves").
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
		return ErrReserveNotFound
	}

	return nil
}

func (r *Repository) scanReserves(rows *sql.Rows) ([]*domain.Reserve, error) {
	reserves := make([]*domain.Reserve, 0)

	for rows.Next() {
		var res domain.Reserve
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.CustomerID,
			&res.HairdresserID,
			&res.ServiceID,
			&res.StartTime,
			&res.DurationMinutes,
			&res.ServiceName,
			&res.ServicePrice,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReserves - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reserves = append(reserves, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReserves - rows error: %v", ErrScanRow, err)
	}

	return reserves, nil
}
