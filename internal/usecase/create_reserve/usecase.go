package create_reserve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	catalogClient "github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	usersClient "github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

// UseCase is the booking committer: the single call site that writes
// appointments. It validates the requested interval against committed
// state inside a serializable transaction, so the slot listing a client
// saw earlier is only advisory and may be stale by commit time.
type UseCase struct {
	agendaRepo    AgendaRepository
	reserveRepo   ReserveRepository
	usersClient   UsersServiceClient
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase creates a new booking committer.
func NewUseCase(
	agendaRepo AgendaRepository,
	reserveRepo ReserveRepository,
	usersClient UsersServiceClient,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		agendaRepo:    agendaRepo,
		reserveRepo:   reserveRepo,
		usersClient:   usersClient,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute commits a booking: either both the reserve and its agenda
// entry are created, or nothing is.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReserve: customer=%d, hairdresser=%d, service=%d, start=%s",
		req.CustomerID, req.HairdresserID, req.ServiceID, req.StartTime.Format(time.RFC3339))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReserve: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the customer
	if _, err := uc.usersClient.GetCustomer(ctx, req.CustomerID); err != nil {
		if errors.Is(err, usersClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateReserve: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateReserve: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Resolve the hairdresser
	if _, err := uc.usersClient.GetHairdresser(ctx, req.HairdresserID); err != nil {
		if errors.Is(err, usersClient.ErrHairdresserNotFound) {
			uc.logger.Warn("CreateReserve: hairdresser id=%d not found", req.HairdresserID)
			return nil, ErrHairdresserNotFound
		}
		uc.logger.Error("CreateReserve: failed to get hairdresser id=%d: %v", req.HairdresserID, err)
		return nil, fmt.Errorf("%w: failed to get hairdresser: %v", ErrInternal, err)
	}

	// 4. Resolve the service, which defines the appointment duration
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateReserve: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReserve: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	requestedStart := req.StartTime
	requestedEnd := requestedStart.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var result *domain.Reserve

	// 5. Conflict check and paired insert run in one serializable
	// transaction; two overlapping attempts cannot both commit.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Re-read the hairdresser's ledger for that day with row locks
		entries, err := uc.agendaRepo.ListForDay(txCtx, req.HairdresserID, requestedStart)
		if err != nil {
			uc.logger.Error("CreateReserve: failed to get agenda entries: %v", err)
			return fmt.Errorf("%w: failed to get agenda entries: %v", ErrInternal, err)
		}

		// 5.2. The authoritative overlap check, same half-open rule as
		// slot generation
		for _, entry := range entries {
			if entry.Overlaps(requestedStart, requestedEnd) {
				uc.logger.Warn("CreateReserve: slot taken, hairdresser=%d, requested=[%s, %s), blocked by entry id=%d",
					req.HairdresserID, requestedStart.Format(time.RFC3339), requestedEnd.Format(time.RFC3339), entry.ID)
				return ErrSlotTaken
			}
		}

		// 5.3. The customer must not overlap their own reserves either,
		// independent of hairdresser
		own, err := uc.reserveRepo.ListOverlapping(txCtx, req.CustomerID, requestedStart, requestedEnd)
		if err != nil {
			uc.logger.Error("CreateReserve: failed to check customer reserves: %v", err)
			return fmt.Errorf("%w: failed to check customer reserves: %v", ErrInternal, err)
		}
		if len(own) > 0 {
			uc.logger.Warn("CreateReserve: customer=%d already reserved at [%s, %s), conflicting reserve id=%d",
				req.CustomerID, requestedStart.Format(time.RFC3339), requestedEnd.Format(time.RFC3339), own[0].ID)
			return ErrCustomerDoubleBooked
		}

		// 5.4. Insert the reserve with denormalized service data
		reserve := &domain.Reserve{
			CustomerID:      req.CustomerID,
			HairdresserID:   req.HairdresserID,
			ServiceID:       req.ServiceID,
			StartTime:       requestedStart,
			DurationMinutes: service.DurationMinutes,
			ServiceName:     service.Name,
			ServicePrice:    servicePrice(service),
		}

		created, err := uc.reserveRepo.Create(txCtx, reserve)
		if err != nil {
			uc.logger.Error("CreateReserve: failed to create reserve: %v", err)
			return fmt.Errorf("%w: failed to create reserve: %v", ErrInternal, err)
		}

		// 5.5. Insert the paired ledger entry
		entry := &domain.AgendaEntry{
			ReserveID:       created.ID,
			HairdresserID:   req.HairdresserID,
			ServiceID:       req.ServiceID,
			StartTime:       requestedStart,
			EndTime:         requestedEnd,
			ServiceName:     service.Name,
			DurationMinutes: service.DurationMinutes,
		}

		if _, err := uc.agendaRepo.Create(txCtx, entry); err != nil {
			uc.logger.Error("CreateReserve: failed to create agenda entry: %v", err)
			return fmt.Errorf("%w: failed to create agenda entry: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReserve: successfully created reserve id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		HairdresserID:   result.HairdresserID,
		ServiceID:       result.ServiceID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime(),
		DurationMinutes: result.DurationMinutes,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// servicePrice extracts the price from a service, 0 when unset.
func servicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
