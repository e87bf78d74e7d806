package create_reserve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	"github.com/hairmatch/HM-ReserveService/pkg/ptr"
)

type fakeAgendaRepo struct {
	entries []*domain.AgendaEntry
	created []*domain.AgendaEntry
}

func (f *fakeAgendaRepo) ListForDay(ctx context.Context, hairdresserID int64, day time.Time) ([]*domain.AgendaEntry, error) {
	return f.entries, nil
}

func (f *fakeAgendaRepo) Create(ctx context.Context, entry *domain.AgendaEntry) (*domain.AgendaEntry, error) {
	created := *entry
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeReserveRepo struct {
	overlapping []*domain.Reserve
	created     []*domain.Reserve
}

func (f *fakeReserveRepo) Create(ctx context.Context, res *domain.Reserve) (*domain.Reserve, error) {
	created := *res
	created.ID = int64(len(f.created) + 100)
	created.CreatedAt = time.Now()
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeReserveRepo) ListOverlapping(ctx context.Context, customerID int64, start, end time.Time) ([]*domain.Reserve, error) {
	return f.overlapping, nil
}

type fakeUsersClient struct {
	customerErr    error
	hairdresserErr error
}

func (f *fakeUsersClient) GetCustomer(ctx context.Context, customerID int64) (*usersservice.Customer, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	return &usersservice.Customer{ID: customerID}, nil
}

func (f *fakeUsersClient) GetHairdresser(ctx context.Context, hairdresserID int64) (*usersservice.Hairdresser, error) {
	if f.hairdresserErr != nil {
		return nil, f.hairdresserErr
	}
	return &usersservice.Hairdresser{ID: hairdresserID}, nil
}

type fakeCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalogClient) GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testService() *catalogservice.Service {
	return &catalogservice.Service{
		ID:              3,
		Name:            "Haircut",
		DurationMinutes: 60,
		Price:           ptr.Ptr(45.0),
	}
}

func validRequest() *Request {
	return &Request{
		CustomerID:    1,
		HairdresserID: 2,
		ServiceID:     3,
		StartTime:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	agendaRepo := &fakeAgendaRepo{}
	reserveRepo := &fakeReserveRepo{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(agendaRepo, reserveRepo, &fakeUsersClient{}, &fakeCatalogClient{service: testService()}, txMgr, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.CustomerID)
	assert.Equal(t, int64(2), resp.HairdresserID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 45.0, resp.ServicePrice)
	assert.Equal(t, resp.StartTime.Add(60*time.Minute), resp.EndTime)

	// Both halves of the pair are written inside one transaction.
	assert.Equal(t, 1, txMgr.calls)
	require.Len(t, reserveRepo.created, 1)
	require.Len(t, agendaRepo.created, 1)
	assert.Equal(t, reserveRepo.created[0].ID, agendaRepo.created[0].ReserveID)
	assert.Equal(t, resp.EndTime, agendaRepo.created[0].EndTime)
}

func TestExecute_SlotTaken(t *testing.T) {
	agendaRepo := &fakeAgendaRepo{
		entries: []*domain.AgendaEntry{
			{
				ID:            7,
				HairdresserID: 2,
				StartTime:     time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
				EndTime:       time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
			},
		},
	}
	reserveRepo := &fakeReserveRepo{}

	uc := NewUseCase(agendaRepo, reserveRepo, &fakeUsersClient{}, &fakeCatalogClient{service: testService()}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, reserveRepo.created)
	assert.Empty(t, agendaRepo.created)
}

func TestExecute_TouchingEntryDoesNotConflict(t *testing.T) {
	agendaRepo := &fakeAgendaRepo{
		entries: []*domain.AgendaEntry{
			{
				ID:            7,
				HairdresserID: 2,
				StartTime:     time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
				EndTime:       time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	reserveRepo := &fakeReserveRepo{}

	uc := NewUseCase(agendaRepo, reserveRepo, &fakeUsersClient{}, &fakeCatalogClient{service: testService()}, &fakeTxManager{}, noopLogger{})

	// Requested interval is [10:00, 11:00); an entry starting at 11:00
	// shares only the edge.
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, reserveRepo.created, 1)
}

func TestExecute_CustomerDoubleBooked(t *testing.T) {
	agendaRepo := &fakeAgendaRepo{}
	reserveRepo := &fakeReserveRepo{
		overlapping: []*domain.Reserve{
			{ID: 42, CustomerID: 1},
		},
	}

	uc := NewUseCase(agendaRepo, reserveRepo, &fakeUsersClient{}, &fakeCatalogClient{service: testService()}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerDoubleBooked)
	assert.Empty(t, reserveRepo.created)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	users := &fakeUsersClient{customerErr: usersservice.ErrCustomerNotFound}

	uc := NewUseCase(&fakeAgendaRepo{}, &fakeReserveRepo{}, users, &fakeCatalogClient{service: testService()}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_HairdresserNotFound(t *testing.T) {
	users := &fakeUsersClient{hairdresserErr: usersservice.ErrHairdresserNotFound}

	uc := NewUseCase(&fakeAgendaRepo{}, &fakeReserveRepo{}, users, &fakeCatalogClient{service: testService()}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHairdresserNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &fakeCatalogClient{err: catalogservice.ErrServiceNotFound}

	uc := NewUseCase(&fakeAgendaRepo{}, &fakeReserveRepo{}, &fakeUsersClient{}, catalog, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAgendaRepo{}, &fakeReserveRepo{}, &fakeUsersClient{}, &fakeCatalogClient{service: testService()}, &fakeTxManager{}, noopLogger{})

	tests := []struct {
		name    string
		mutate  func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"negative hairdresser", func(r *Request) { r.HairdresserID = -1 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NilPriceDefaultsToZero(t *testing.T) {
	service := testService()
	service.Price = nil

	uc := NewUseCase(&fakeAgendaRepo{}, &fakeReserveRepo{}, &fakeUsersClient{}, &fakeCatalogClient{service: service}, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.ServicePrice)
}
