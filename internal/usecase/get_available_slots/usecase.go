package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	availabilityRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/availability"
	catalogClient "github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	usersClient "github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	"github.com/hairmatch/HM-ReserveService/pkg/types"
)

// UseCase computes the bookable start times for a hairdresser, a
// service and a calendar date.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	agendaRepo       AgendaRepository
	usersClient      UsersServiceClient
	catalogClient    CatalogServiceClient
	granularity      int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates a new slot listing use case.
// granularityMinutes <= 0 falls back to the default slot granularity.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	agendaRepo AgendaRepository,
	usersClient UsersServiceClient,
	catalogClient CatalogServiceClient,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		agendaRepo:       agendaRepo,
		usersClient:      usersClient,
		catalogClient:    catalogClient,
		granularity:      granularityMinutes,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute computes the ordered list of bookable start times.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: hairdresser=%d, service=%d, date=%s",
		req.HairdresserID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the hairdresser
	if _, err := uc.usersClient.GetHairdresser(ctx, req.HairdresserID); err != nil {
		if errors.Is(err, usersClient.ErrHairdresserNotFound) {
			uc.logger.Warn("GetAvailableSlots: hairdresser id=%d not found", req.HairdresserID)
			return nil, ErrHairdresserNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get hairdresser id=%d: %v", req.HairdresserID, err)
		return nil, fmt.Errorf("%w: failed to get hairdresser: %v", ErrInternal, err)
	}

	// 3. Resolve the service, which defines the slot duration
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Resolve working hours for the weekday.
	// An unconfigured weekday means zero slots, not a failure.
	weekday := domain.WeekdayFromTime(req.Date)
	working, err := uc.availabilityRepo.GetByHairdresserAndWeekday(ctx, req.HairdresserID, weekday)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetAvailableSlots: hairdresser id=%d has no working hours on %s",
				req.HairdresserID, weekday)
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 5. Read the ledger: committed appointments are blocking intervals
	entries, err := uc.agendaRepo.ListForDay(ctx, req.HairdresserID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get agenda entries: %v", err)
		return nil, fmt.Errorf("%w: failed to get agenda entries: %v", ErrInternal, err)
	}

	blocking, err := buildBlockingIntervals(req.Date, working, entries)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build blocking intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to build blocking intervals: %v", ErrInternal, err)
	}

	// 6. The past cutoff applies only when listing slots for today
	now := uc.timeProvider.Now()
	cutoff := time.Time{}
	if isSameDay(req.Date, now) {
		cutoff = now
	}

	// 7. Generate the slots
	slots, err := generateSlots(req.Date, working, blocking, service.DurationMinutes, uc.granularity, cutoff)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for hairdresser=%d, service=%d, date=%s",
		len(slots), req.HairdresserID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		HairdresserID: req.HairdresserID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Slots:         slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		HairdresserID: req.HairdresserID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Slots:         []types.TimeString{},
	}
}
