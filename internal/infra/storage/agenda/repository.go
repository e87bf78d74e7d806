package agenda

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

var agendaColumns = []string{
	"id",
	"reserve_id",
	"hairdresser_id",
	"service_id",
	"start_time",
	"end_time",
	"service_name",
	"duration_minutes",
	"created_at",
}

// Repository provides access to the appointment ledger.
// Entries are written only by the booking transaction; every other
// caller reads.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new agenda repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a ledger entry. Always called inside the booking
// transaction, together with the paired reserve insert.
func (r *Repository) Create(ctx context.Context, entry *domain.AgendaEntry) (*domain.AgendaEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agenda").
		Columns(
			"reserve_id",
			"hairdresser_id",
			"service_id",
			"start_time",
			"end_time",
			"service_name",
			"duration_minutes",
		).
		Values(
			entry.ReserveID,
			entry.HairdresserID,
			entry.ServiceID,
			entry.StartTime,
			entry.EndTime,
			entry.ServiceName,
			entry.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// GetByID fetches one ledger entry by its id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AgendaEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(agendaColumns...).
		From("agenda").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.AgendaEntry
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.ReserveID,
		&entry.HairdresserID,
		&entry.ServiceID,
		&entry.StartTime,
		&entry.EndTime,
		&entry.ServiceName,
		&entry.DurationMinutes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	entry.CreatedAt = createdAt.Time

	return &entry, nil
}

// ListForDay returns all committed appointments of a hairdresser whose
// interval intersects the given calendar day, ordered by start time.
// These are the blocking intervals for slot generation and for the
// conflict check of the booking transaction.
//
// When called inside a transaction the selected rows are locked with
// FOR UPDATE so that two concurrent booking attempts for the same
// hairdresser serialize on the ledger.
func (r *Repository) ListForDay(ctx context.Context, hairdresserID int64, day time.Time) ([]*domain.AgendaEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(agendaColumns...).
		From("agenda").
		Where(squirrel.Eq{"hairdresser_id": hairdresserID}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.Gt{"end_time": dayStart}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// List returns ledger entries, optionally filtered by hairdresser,
// ordered by start time.
func (r *Repository) List(ctx context.Context, hairdresserID *int64) ([]*domain.AgendaEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(agendaColumns...).
		From("agenda").
		OrderBy("start_time ASC")

	if hairdresserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"hairdresser_id": *hairdresserID})
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

	return r.scanEntries(rows)
}

// Delete removes one ledger entry.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agenda").
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
		return ErrEntryNotFound
	}

	return nil
}

// DeleteByReserveID removes the ledger entry paired with a reserve.
// Used by the reserve removal transaction so the pair never diverges.
func (r *Repository) DeleteByReserveID(ctx context.Context, reserveID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agenda").
		Where(squirrel.Eq{"reserve_id": reserveID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByReserveID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByReserveID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.AgendaEntry, error) {
	entries := make([]*domain.AgendaEntry, 0)

	for rows.Next() {
		var entry domain.AgendaEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.ReserveID,
			&entry.HairdresserID,
			&entry.ServiceID,
			&entry.StartTime,
			&entry.EndTime,
			&entry.ServiceName,
			&entry.DurationMinutes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
