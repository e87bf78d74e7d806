package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	agendaRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/agenda"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

type fakeAgendaRepo struct {
	rows map[int64]*domain.AgendaEntry
}

func newFakeAgendaRepo(rows ...*domain.AgendaEntry) *fakeAgendaRepo {
	f := &fakeAgendaRepo{rows: make(map[int64]*domain.AgendaEntry)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeAgendaRepo) GetByID(ctx context.Context, id int64) (*domain.AgendaEntry, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, agendaRepo.ErrEntryNotFound
	}
	return row, nil
}

func (f *fakeAgendaRepo) List(ctx context.Context, hairdresserID *int64) ([]*domain.AgendaEntry, error) {
	var out []*domain.AgendaEntry
	for _, row := range f.rows {
		if hairdresserID == nil || row.HairdresserID == *hairdresserID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAgendaRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return agendaRepo.ErrEntryNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeReserveRepo struct {
	deleted []int64
}

func (f *fakeReserveRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUsersClient struct {
	err error
}

func (f *fakeUsersClient) GetHairdresser(ctx context.Context, hairdresserID int64) (*usersservice.Hairdresser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &usersservice.Hairdresser{ID: hairdresserID}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testEntry(id, reserveID, hairdresserID int64) *domain.AgendaEntry {
	return &domain.AgendaEntry{
		ID:              id,
		ReserveID:       reserveID,
		HairdresserID:   hairdresserID,
		ServiceID:       3,
		StartTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		ServiceName:     "Haircut",
		DurationMinutes: 60,
	}
}

func TestListByHairdresser_FiltersEntries(t *testing.T) {
	repo := newFakeAgendaRepo(testEntry(1, 100, 2), testEntry(2, 101, 9))
	svc := NewService(repo, &fakeReserveRepo{}, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.ListByHairdresser(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, resp.Agenda, 1)
	assert.Equal(t, int64(1), resp.Agenda[0].ID)
}

func TestListByHairdresser_HairdresserNotFound(t *testing.T) {
	users := &fakeUsersClient{err: usersservice.ErrHairdresserNotFound}
	svc := NewService(newFakeAgendaRepo(), &fakeReserveRepo{}, users, fakeTxManager{}, noopLogger{})

	_, err := svc.ListByHairdresser(context.Background(), 2)
	assert.ErrorIs(t, err, ErrHairdresserNotFound)
}

func TestDelete_RemovesPairedReserve(t *testing.T) {
	repo := newFakeAgendaRepo(testEntry(1, 100, 2))
	reserves := &fakeReserveRepo{}
	svc := NewService(repo, reserves, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))

	assert.Equal(t, []int64{100}, reserves.deleted)
	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, agendaRepo.ErrEntryNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	reserves := &fakeReserveRepo{}
	svc := NewService(newFakeAgendaRepo(), reserves, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.Empty(t, reserves.deleted)
}
