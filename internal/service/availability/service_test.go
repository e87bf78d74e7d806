package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	availabilityRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/availability"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
	"github.com/hairmatch/HM-ReserveService/pkg/ptr"
	"github.com/hairmatch/HM-ReserveService/pkg/types"
)

type fakeAvailabilityRepo struct {
	rows    map[int64]*domain.Availability
	nextID  int64
	deleted []int64
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{rows: make(map[int64]*domain.Availability), nextID: 1}
}

func (f *fakeAvailabilityRepo) Create(ctx context.Context, av *domain.Availability) (*domain.Availability, error) {
	for _, row := range f.rows {
		if row.HairdresserID == av.HairdresserID && row.Weekday == av.Weekday {
			return nil, availabilityRepo.ErrDuplicateWeekday
		}
	}
	created := *av
	created.ID = f.nextID
	f.nextID++
	f.rows[created.ID] = &created
	return &created, nil
}

func (f *fakeAvailabilityRepo) GetByID(ctx context.Context, id int64) (*domain.Availability, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return row, nil
}

func (f *fakeAvailabilityRepo) ListByHairdresser(ctx context.Context, hairdresserID int64) ([]*domain.Availability, error) {
	var out []*domain.Availability
	for _, row := range f.rows {
		if row.HairdresserID == hairdresserID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Update(ctx context.Context, id int64, patch domain.AvailabilityPatch) (*domain.Availability, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	if patch.Weekday != nil {
		row.Weekday = *patch.Weekday
	}
	if patch.StartTime != nil {
		row.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		row.EndTime = *patch.EndTime
	}
	if patch.BreakStart != nil {
		row.BreakStart = patch.BreakStart
	}
	if patch.BreakEnd != nil {
		row.BreakEnd = patch.BreakEnd
	}
	return row, nil
}

func (f *fakeAvailabilityRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return availabilityRepo.ErrAvailabilityNotFound
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteByHairdresser(ctx context.Context, hairdresserID int64) error {
	for id, row := range f.rows {
		if row.HairdresserID == hairdresserID {
			delete(f.rows, id)
		}
	}
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

func newTestService(repo *fakeAvailabilityRepo) *Service {
	return NewService(repo, &fakeUsersClient{}, fakeTxManager{}, noopLogger{})
}

func createRequest(weekday string) *models.CreateRequest {
	return &models.CreateRequest{
		HairdresserID: 1,
		Weekday:       weekday,
		StartTime:     "09:00",
		EndTime:       "17:00",
	}
}

func TestValidateWorkingHours(t *testing.T) {
	mustTS := func(s string) types.TimeString {
		ts, err := types.NewTimeStringFromString(s)
		require.NoError(t, err)
		return ts
	}
	tsPtr := func(s string) *types.TimeString {
		ts := mustTS(s)
		return &ts
	}

	tests := []struct {
		name    string
		row     domain.Availability
		wantErr bool
	}{
		{
			name: "valid without break",
			row:  domain.Availability{StartTime: mustTS("09:00"), EndTime: mustTS("17:00")},
		},
		{
			name: "valid with break",
			row: domain.Availability{
				StartTime: mustTS("09:00"), EndTime: mustTS("17:00"),
				BreakStart: tsPtr("12:00"), BreakEnd: tsPtr("13:00"),
			},
		},
		{
			name:    "start equals end",
			row:     domain.Availability{StartTime: mustTS("09:00"), EndTime: mustTS("09:00")},
			wantErr: true,
		},
		{
			name:    "start after end",
			row:     domain.Availability{StartTime: mustTS("17:00"), EndTime: mustTS("09:00")},
			wantErr: true,
		},
		{
			name: "half-specified break",
			row: domain.Availability{
				StartTime: mustTS("09:00"), EndTime: mustTS("17:00"),
				BreakStart: tsPtr("12:00"),
			},
			wantErr: true,
		},
		{
			name: "break start equals break end",
			row: domain.Availability{
				StartTime: mustTS("09:00"), EndTime: mustTS("17:00"),
				BreakStart: tsPtr("12:00"), BreakEnd: tsPtr("12:00"),
			},
			wantErr: true,
		},
		{
			name: "break outside window",
			row: domain.Availability{
				StartTime: mustTS("09:00"), EndTime: mustTS("17:00"),
				BreakStart: tsPtr("08:00"), BreakEnd: tsPtr("09:30"),
			},
			wantErr: true,
		},
		{
			name: "break ends past closing",
			row: domain.Availability{
				StartTime: mustTS("09:00"), EndTime: mustTS("17:00"),
				BreakStart: tsPtr("16:30"), BreakEnd: tsPtr("17:30"),
			},
			wantErr: true,
		},
		{
			name: "break spans whole window",
			row: domain.Availability{
				StartTime: mustTS("09:00"), EndTime: mustTS("17:00"),
				BreakStart: tsPtr("09:00"), BreakEnd: tsPtr("17:00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkingHours(&tt.row)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreate_DuplicateWeekday(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), createRequest("monday"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRequest("monday"))
	assert.ErrorIs(t, err, ErrDuplicateWeekday)
}

func TestCreate_InvalidWeekdayName(t *testing.T) {
	svc := newTestService(newFakeAvailabilityRepo())

	_, err := svc.Create(context.Background(), createRequest("funday"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_HairdresserNotFound(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, &fakeUsersClient{err: usersservice.ErrHairdresserNotFound}, fakeTxManager{}, noopLogger{})

	_, err := svc.Create(context.Background(), createRequest("monday"))
	assert.ErrorIs(t, err, ErrHairdresserNotFound)
}

func TestCreateMultiple_AllOrNothing(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	reqs := []*models.CreateRequest{
		createRequest("monday"),
		createRequest("tuesday"),
		createRequest("monday"), // duplicate within the batch
	}

	_, err := svc.CreateMultiple(context.Background(), 1, reqs)
	assert.ErrorIs(t, err, ErrDuplicateWeekday)
}

func TestCreateMultiple_TooManyRows(t *testing.T) {
	svc := newTestService(newFakeAvailabilityRepo())

	reqs := make([]*models.CreateRequest, domain.WeekdaysPerSchedule+1)
	for i := range reqs {
		reqs[i] = createRequest("monday")
	}

	_, err := svc.CreateMultiple(context.Background(), 1, reqs)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSchedule_NonWorkingDays(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), createRequest("monday"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), createRequest("wednesday"))
	require.NoError(t, err)

	schedule, err := svc.GetSchedule(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, schedule.Availability, 2)
	// Sunday-based numbering: monday=1, wednesday=3 are configured.
	assert.Equal(t, []int{0, 2, 4, 5, 6}, schedule.NonWorkingDays)
}

func TestUpdate_RejectsInvalidMergedRow(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), createRequest("monday"))
	require.NoError(t, err)

	// Moving the end before the start must fail even though each field
	// alone is well-formed.
	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRequest{
		EndTime: ptr.Ptr("08:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), createRequest("monday"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeAvailabilityRepo())

	_, err := svc.Update(context.Background(), 999, &models.UpdateRequest{
		StartTime: ptr.Ptr("10:00"),
	})
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestUpdate_AppliesPatch(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), createRequest("monday"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateRequest{
		StartTime:  ptr.Ptr("10:00"),
		BreakStart: ptr.Ptr("12:00"),
		BreakEnd:   ptr.Ptr("12:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "10:00", updated.StartTime)
	require.NotNil(t, updated.BreakStart)
	assert.Equal(t, "12:00", *updated.BreakStart)
}

func TestReplaceSchedule_SwapsAllRows(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), createRequest("monday"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), createRequest("tuesday"))
	require.NoError(t, err)

	schedule, err := svc.ReplaceSchedule(context.Background(), 1, []*models.CreateRequest{
		createRequest("saturday"),
	})
	require.NoError(t, err)

	require.Len(t, schedule.Availability, 1)
	assert.Equal(t, "saturday", schedule.Availability[0].Weekday)

	remaining, err := repo.ListByHairdresser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newFakeAvailabilityRepo())

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}
