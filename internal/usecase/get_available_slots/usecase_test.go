package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	availabilityRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/availability"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

type fakeAvailabilityRepo struct {
	working *domain.Availability
	err     error
}

func (f *fakeAvailabilityRepo) GetByHairdresserAndWeekday(ctx context.Context, hairdresserID int64, weekday domain.Weekday) (*domain.Availability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.working, nil
}

type fakeAgendaRepo struct {
	entries []*domain.AgendaEntry
}

func (f *fakeAgendaRepo) ListForDay(ctx context.Context, hairdresserID int64, day time.Time) ([]*domain.AgendaEntry, error) {
	return f.entries, nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T, avail *fakeAvailabilityRepo, agenda *fakeAgendaRepo, service *catalogservice.Service) *UseCase {
	t.Helper()
	return NewUseCase(
		avail,
		agenda,
		&fakeUsersClient{},
		&fakeCatalogClient{service: service},
		30,
		noopLogger{},
	)
}

func haircut() *catalogservice.Service {
	return &catalogservice.Service{ID: 3, Name: "Haircut", DurationMinutes: 60}
}

func validSlotsRequest() *Request {
	return &Request{
		HairdresserID: 2,
		ServiceID:     3,
		Date:          testDate,
	}
}

func TestUseCaseExecute_HappyPath(t *testing.T) {
	avail := &fakeAvailabilityRepo{working: workingHours(t, "09:00", "12:00", "", "")}
	uc := newTestUseCase(t, avail, &fakeAgendaRepo{}, haircut())

	resp, err := uc.Execute(context.Background(), validSlotsRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotStrings(resp.Slots))
}

func TestUseCaseExecute_UnconfiguredWeekdayYieldsEmptySlots(t *testing.T) {
	avail := &fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound}
	uc := newTestUseCase(t, avail, &fakeAgendaRepo{}, haircut())

	resp, err := uc.Execute(context.Background(), validSlotsRequest())
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCaseExecute_HairdresserNotFound(t *testing.T) {
	avail := &fakeAvailabilityRepo{working: workingHours(t, "09:00", "12:00", "", "")}
	uc := NewUseCase(
		avail,
		&fakeAgendaRepo{},
		&fakeUsersClient{err: usersservice.ErrHairdresserNotFound},
		&fakeCatalogClient{service: haircut()},
		30,
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validSlotsRequest())
	assert.ErrorIs(t, err, ErrHairdresserNotFound)
}

func TestUseCaseExecute_ServiceNotFound(t *testing.T) {
	avail := &fakeAvailabilityRepo{working: workingHours(t, "09:00", "12:00", "", "")}
	uc := NewUseCase(
		avail,
		&fakeAgendaRepo{},
		&fakeUsersClient{},
		&fakeCatalogClient{err: catalogservice.ErrServiceNotFound},
		30,
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validSlotsRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCaseExecute_InvalidInput(t *testing.T) {
	avail := &fakeAvailabilityRepo{working: workingHours(t, "09:00", "12:00", "", "")}
	uc := newTestUseCase(t, avail, &fakeAgendaRepo{}, haircut())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero hairdresser", func(r *Request) { r.HairdresserID = 0 }},
		{"negative service", func(r *Request) { r.ServiceID = -5 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSlotsRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCaseExecute_CutoffAppliesOnlyToday(t *testing.T) {
	avail := &fakeAvailabilityRepo{working: workingHours(t, "09:00", "12:00", "", "")}

	t.Run("today drops past slots", func(t *testing.T) {
		uc := newTestUseCase(t, avail, &fakeAgendaRepo{}, haircut())
		uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}

		resp, err := uc.Execute(context.Background(), validSlotsRequest())
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "10:30", "11:00"}, slotStrings(resp.Slots))
	})

	t.Run("future date keeps all slots", func(t *testing.T) {
		uc := newTestUseCase(t, avail, &fakeAgendaRepo{}, haircut())
		uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)}

		resp, err := uc.Execute(context.Background(), validSlotsRequest())
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotStrings(resp.Slots))
	})
}

func TestUseCaseExecute_AgendaEntriesBlockSlots(t *testing.T) {
	avail := &fakeAvailabilityRepo{working: workingHours(t, "09:00", "12:00", "", "")}
	agenda := &fakeAgendaRepo{
		entries: []*domain.AgendaEntry{
			{
				HairdresserID: 2,
				StartTime:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				EndTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(t, avail, agenda, haircut())

	resp, err := uc.Execute(context.Background(), validSlotsRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, slotStrings(resp.Slots))
}
