package reserves

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	reserveRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/reserve"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

type fakeReserveRepo struct {
	rows map[int64]*domain.Reserve
}

func newFakeReserveRepo(rows ...*domain.Reserve) *fakeReserveRepo {
	f := &fakeReserveRepo{rows: make(map[int64]*domain.Reserve)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeReserveRepo) GetByID(ctx context.Context, id int64) (*domain.Reserve, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, reserveRepo.ErrReserveNotFound
	}
	return row, nil
}

func (f *fakeReserveRepo) List(ctx context.Context, customerID *int64) ([]*domain.Reserve, error) {
	var out []*domain.Reserve
	for _, row := range f.rows {
		if customerID == nil || row.CustomerID == *customerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeReserveRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return reserveRepo.ErrReserveNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeAgendaRepo struct {
	deletedReserveIDs []int64
}

func (f *fakeAgendaRepo) DeleteByReserveID(ctx context.Context, reserveID int64) error {
	f.deletedReserveIDs = append(f.deletedReserveIDs, reserveID)
	return nil
}

type fakeUsersClient struct {
	err error
}

func (f *fakeUsersClient) GetCustomer(ctx context.Context, customerID int64) (*usersservice.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &usersservice.Customer{ID: customerID}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testReserve(id, customerID int64) *domain.Reserve {
	return &domain.Reserve{
		ID:              id,
		CustomerID:      customerID,
		HairdresserID:   2,
		ServiceID:       3,
		StartTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		ServiceName:     "Haircut",
		ServicePrice:    45.0,
		CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeReserveRepo(testReserve(1, 10))
	svc := NewService(repo, &fakeAgendaRepo{}, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.CustomerID)
	assert.Equal(t, "Haircut", resp.ServiceName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeReserveRepo(), &fakeAgendaRepo{}, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReserveNotFound)
}

func TestListByCustomer_CustomerNotFound(t *testing.T) {
	users := &fakeUsersClient{err: usersservice.ErrCustomerNotFound}
	svc := NewService(newFakeReserveRepo(), &fakeAgendaRepo{}, users, fakeTxManager{}, noopLogger{})

	_, err := svc.ListByCustomer(context.Background(), 10)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestListByCustomer_FiltersByCustomer(t *testing.T) {
	repo := newFakeReserveRepo(testReserve(1, 10), testReserve(2, 11))
	svc := NewService(repo, &fakeAgendaRepo{}, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.ListByCustomer(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, resp.Reserves, 1)
	assert.Equal(t, int64(1), resp.Reserves[0].ID)
}

func TestDelete_RemovesPairedAgendaEntry(t *testing.T) {
	repo := newFakeReserveRepo(testReserve(1, 10))
	agenda := &fakeAgendaRepo{}
	svc := NewService(repo, agenda, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))

	assert.Equal(t, []int64{1}, agenda.deletedReserveIDs)
	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, reserveRepo.ErrReserveNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	agenda := &fakeAgendaRepo{}
	svc := NewService(newFakeReserveRepo(), agenda, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReserveNotFound)
	assert.Empty(t, agenda.deletedReserveIDs)
}
