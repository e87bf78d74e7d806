package agenda

import (
	"context"
	"errors"
	"fmt"

	agendaRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/agenda"
	usersClient "github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	"github.com/hairmatch/HM-ReserveService/internal/service/agenda/models"
)

// Service provides read and removal operations on the appointment
// ledger. Entries are created only by the booking committer use case.
type Service struct {
	agendaRepo  AgendaRepository
	reserveRepo ReserveRepository
	usersClient UsersServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService creates a new agenda service.
func NewService(
	agendaRepo AgendaRepository,
	reserveRepo ReserveRepository,
	usersClient UsersServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		agendaRepo:  agendaRepo,
		reserveRepo: reserveRepo,
		usersClient: usersClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// List returns all ledger entries ordered by start time.
func (s *Service) List(ctx context.Context) (*models.AgendaListResponse, error) {
	s.logger.Info("List: fetching all agenda entries")

	list, err := s.agendaRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d agenda entries", len(list))
	return models.FromDomainEntryList(list), nil
}

// ListByHairdresser returns the ledger of one hairdresser ordered by
// start time. The hairdresser must exist.
func (s *Service) ListByHairdresser(ctx context.Context, hairdresserID int64) (*models.AgendaListResponse, error) {
	s.logger.Info("ListByHairdresser: fetching agenda for hairdresser=%d", hairdresserID)

	if _, err := s.usersClient.GetHairdresser(ctx, hairdresserID); err != nil {
		if errors.Is(err, usersClient.ErrHairdresserNotFound) {
			s.logger.Warn("ListByHairdresser: hairdresser id=%d not found", hairdresserID)
			return nil, ErrHairdresserNotFound
		}
		s.logger.Error("ListByHairdresser: failed to get hairdresser id=%d: %v", hairdresserID, err)
		return nil, fmt.Errorf("%w: ListByHairdresser - failed to get hairdresser: %v", ErrInternal, err)
	}

	list, err := s.agendaRepo.List(ctx, &hairdresserID)
	if err != nil {
		s.logger.Error("ListByHairdresser: repository error for hairdresser=%d: %v", hairdresserID, err)
		return nil, fmt.Errorf("%w: ListByHairdresser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByHairdresser: fetched %d entries for hairdresser=%d", len(list), hairdresserID)
	return models.FromDomainEntryList(list), nil
}

// Delete removes a ledger entry together with its paired reserve.
// Both go or neither does.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing agenda entry id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		entry, err := s.agendaRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, agendaRepo.ErrEntryNotFound) {
				return ErrEntryNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.agendaRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, agendaRepo.ErrEntryNotFound) {
				return ErrEntryNotFound
			}
			return fmt.Errorf("%w: Delete - failed to delete entry: %v", ErrInternal, err)
		}

		if err := s.reserveRepo.Delete(txCtx, entry.ReserveID); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete paired reserve: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			s.logger.Warn("Delete: agenda entry id=%d not found", id)
		} else {
			s.logger.Error("Delete: failed to remove agenda entry id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Delete: successfully removed agenda entry id=%d", id)
	return nil
}
