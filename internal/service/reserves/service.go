package reserves

import (
	"context"
	"errors"
	"fmt"

	reserveRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/reserve"
	usersClient "github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	"github.com/hairmatch/HM-ReserveService/internal/service/reserves/models"
)

// Service provides read and removal operations on reserves.
// Creation goes through the booking committer use case only.
type Service struct {
	reserveRepo ReserveRepository
	agendaRepo  AgendaRepository
	usersClient UsersServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService creates a new reserves service.
func NewService(
	reserveRepo ReserveRepository,
	agendaRepo AgendaRepository,
	usersClient UsersServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reserveRepo: reserveRepo,
		agendaRepo:  agendaRepo,
		usersClient: usersClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID fetches one reserve.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReserveResponse, error) {
	s.logger.Info("GetByID: fetching reserve id=%d", id)

	res, err := s.reserveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserveRepo.ErrReserveNotFound) {
			s.logger.Warn("GetByID: reserve id=%d not found", id)
			return nil, ErrReserveNotFound
		}
		s.logger.Error("GetByID: repository error for reserve id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReserve(res), nil
}

// List returns all reserves ordered by start time.
func (s *Service) List(ctx context.Context) (*models.ReserveListResponse, error) {
	s.logger.Info("List: fetching all reserves")

	list, err := s.reserveRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reserves", len(list))
	return models.FromDomainReserveList(list), nil
}

// ListByCustomer returns the reserves of one customer ordered by start
// time. The customer must exist.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) (*models.ReserveListResponse, error) {
	s.logger.Info("ListByCustomer: fetching reserves for customer=%d", customerID)

	if _, err := s.usersClient.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, usersClient.ErrCustomerNotFound) {
			s.logger.Warn("ListByCustomer: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("ListByCustomer: failed to get customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - failed to get customer: %v", ErrInternal, err)
	}

	list, err := s.reserveRepo.List(ctx, &customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: fetched %d reserves for customer=%d", len(list), customerID)
	return models.FromDomainReserveList(list), nil
}

// Delete removes a reserve together with its paired agenda entry.
// Both go or neither does.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing reserve id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.reserveRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, reserveRepo.ErrReserveNotFound) {
				return ErrReserveNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.agendaRepo.DeleteByReserveID(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete agenda entry: %v", ErrInternal, err)
		}

		if err := s.reserveRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reserveRepo.ErrReserveNotFound) {
				return ErrReserveNotFound
			}
			return fmt.Errorf("%w: Delete - failed to delete reserve: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReserveNotFound) {
			s.logger.Warn("Delete: reserve id=%d not found", id)
		} else {
			s.logger.Error("Delete: failed to remove reserve id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Delete: successfully removed reserve id=%d", id)
	return nil
}
