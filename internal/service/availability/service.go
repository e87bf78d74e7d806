package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	availabilityRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/availability"
	usersClient "github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
)

// Service manages the weekly working-hours schedules of hairdressers.
type Service struct {
	availabilityRepo AvailabilityRepository
	usersClient      UsersServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewService creates a new availability service.
func NewService(
	availabilityRepo AvailabilityRepository,
	usersClient UsersServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		usersClient:      usersClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Create adds one working-hours row for a hairdresser.
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Create: hairdresser=%d, weekday=%s", req.HairdresserID, req.Weekday)

	av, err := s.buildRow(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, av)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateWeekday) {
			s.logger.Warn("Create: hairdresser=%d already has working hours on %s", req.HairdresserID, req.Weekday)
			return nil, ErrDuplicateWeekday
		}
		s.logger.Error("Create: repository error for hairdresser=%d: %v", req.HairdresserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created availability id=%d for hairdresser=%d", created.ID, req.HairdresserID)
	return models.FromDomainAvailability(created), nil
}

// CreateMultiple adds a set of working-hours rows for one hairdresser
// in a single transaction: either all rows are created or none is.
func (s *Service) CreateMultiple(ctx context.Context, hairdresserID int64, reqs []*models.CreateRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("CreateMultiple: hairdresser=%d, rows=%d", hairdresserID, len(reqs))

	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one row is required", ErrInvalidInput)
	}
	if len(reqs) > domain.WeekdaysPerSchedule {
		return nil, fmt.Errorf("%w: at most %d rows per schedule", ErrInvalidInput, domain.WeekdaysPerSchedule)
	}

	if err := s.checkHairdresser(ctx, hairdresserID); err != nil {
		return nil, err
	}

	// Parse and validate everything before touching storage.
	rows := make([]*domain.Availability, len(reqs))
	for i, req := range reqs {
		av, err := s.parseRow(req)
		if err != nil {
			return nil, err
		}
		av.HairdresserID = hairdresserID
		rows[i] = av
	}

	created := make([]*domain.Availability, 0, len(rows))

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, av := range rows {
			row, err := s.availabilityRepo.Create(txCtx, av)
			if err != nil {
				if errors.Is(err, availabilityRepo.ErrDuplicateWeekday) {
					return ErrDuplicateWeekday
				}
				return fmt.Errorf("%w: CreateMultiple - repository error: %v", ErrInternal, err)
			}
			created = append(created, row)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDuplicateWeekday) {
			s.logger.Warn("CreateMultiple: duplicate weekday for hairdresser=%d", hairdresserID)
		} else {
			s.logger.Error("CreateMultiple: failed for hairdresser=%d: %v", hairdresserID, err)
		}
		return nil, err
	}

	s.logger.Info("CreateMultiple: created %d rows for hairdresser=%d", len(created), hairdresserID)
	return models.FromDomainSchedule(created), nil
}

// GetSchedule returns the weekly schedule of a hairdresser: configured
// rows ordered Sunday first plus the non-working weekday numbers.
func (s *Service) GetSchedule(ctx context.Context, hairdresserID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: hairdresser=%d", hairdresserID)

	if err := s.checkHairdresser(ctx, hairdresserID); err != nil {
		return nil, err
	}

	list, err := s.availabilityRepo.ListByHairdresser(ctx, hairdresserID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for hairdresser=%d: %v", hairdresserID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: hairdresser=%d has %d configured weekdays", hairdresserID, len(list))
	return models.FromDomainSchedule(list), nil
}

// Update applies a partial update to one working-hours row and
// re-validates the invariants on the resulting row.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: availability id=%d", id)

	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid patch for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// Validate the invariants against the merged row before writing.
	current, err := s.availabilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Update: availability id=%d not found", id)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	merged := applyPatch(*current, patch)
	if err := validateWorkingHours(&merged); err != nil {
		s.logger.Warn("Update: invalid working hours for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.availabilityRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrAvailabilityNotFound):
			s.logger.Warn("Update: availability id=%d not found", id)
			return nil, ErrAvailabilityNotFound
		case errors.Is(err, availabilityRepo.ErrDuplicateWeekday):
			s.logger.Warn("Update: duplicate weekday for id=%d", id)
			return nil, ErrDuplicateWeekday
		default:
			s.logger.Error("Update: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: updated availability id=%d", id)
	return models.FromDomainAvailability(updated), nil
}

// ReplaceSchedule swaps the whole weekly schedule of a hairdresser for
// a new one in a single transaction.
func (s *Service) ReplaceSchedule(ctx context.Context, hairdresserID int64, reqs []*models.CreateRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: hairdresser=%d, rows=%d", hairdresserID, len(reqs))

	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one row is required", ErrInvalidInput)
	}
	if len(reqs) > domain.WeekdaysPerSchedule {
		return nil, fmt.Errorf("%w: at most %d rows per schedule", ErrInvalidInput, domain.WeekdaysPerSchedule)
	}

	if err := s.checkHairdresser(ctx, hairdresserID); err != nil {
		return nil, err
	}

	rows := make([]*domain.Availability, len(reqs))
	for i, req := range reqs {
		av, err := s.parseRow(req)
		if err != nil {
			return nil, err
		}
		av.HairdresserID = hairdresserID
		rows[i] = av
	}

	created := make([]*domain.Availability, 0, len(rows))

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.DeleteByHairdresser(txCtx, hairdresserID); err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - failed to clear schedule: %v", ErrInternal, err)
		}

		for _, av := range rows {
			row, err := s.availabilityRepo.Create(txCtx, av)
			if err != nil {
				if errors.Is(err, availabilityRepo.ErrDuplicateWeekday) {
					return ErrDuplicateWeekday
				}
				return fmt.Errorf("%w: ReplaceSchedule - repository error: %v", ErrInternal, err)
			}
			created = append(created, row)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDuplicateWeekday) {
			s.logger.Warn("ReplaceSchedule: duplicate weekday for hairdresser=%d", hairdresserID)
		} else {
			s.logger.Error("ReplaceSchedule: failed for hairdresser=%d: %v", hairdresserID, err)
		}
		return nil, err
	}

	s.logger.Info("ReplaceSchedule: replaced schedule of hairdresser=%d with %d rows", hairdresserID, len(created))
	return models.FromDomainSchedule(created), nil
}

// Delete removes one working-hours row.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: availability id=%d", id)

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability id=%d not found", id)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed availability id=%d", id)
	return nil
}

// buildRow resolves the hairdresser and parses one create request.
func (s *Service) buildRow(ctx context.Context, req *models.CreateRequest) (*domain.Availability, error) {
	if err := s.checkHairdresser(ctx, req.HairdresserID); err != nil {
		return nil, err
	}
	return s.parseRow(req)
}

// parseRow converts a create request and validates the invariants.
func (s *Service) parseRow(req *models.CreateRequest) (*domain.Availability, error) {
	av, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("parseRow: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateWorkingHours(av); err != nil {
		s.logger.Warn("parseRow: invalid working hours: %v", err)
		return nil, err
	}

	return av, nil
}

func (s *Service) checkHairdresser(ctx context.Context, hairdresserID int64) error {
	if hairdresserID <= 0 {
		return fmt.Errorf("%w: hairdresserID must be positive", ErrInvalidInput)
	}

	if _, err := s.usersClient.GetHairdresser(ctx, hairdresserID); err != nil {
		if errors.Is(err, usersClient.ErrHairdresserNotFound) {
			s.logger.Warn("checkHairdresser: hairdresser id=%d not found", hairdresserID)
			return ErrHairdresserNotFound
		}
		s.logger.Error("checkHairdresser: failed to get hairdresser id=%d: %v", hairdresserID, err)
		return fmt.Errorf("%w: failed to get hairdresser: %v", ErrInternal, err)
	}

	return nil
}

// applyPatch merges a patch onto a copy of the row, for invariant
// validation only; the actual write happens in the repository.
func applyPatch(av domain.Availability, patch domain.AvailabilityPatch) domain.Availability {
	if patch.Weekday != nil {
		av.Weekday = *patch.Weekday
	}
	if patch.StartTime != nil {
		av.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		av.EndTime = *patch.EndTime
	}
	if patch.BreakStart != nil {
		av.BreakStart = patch.BreakStart
	}
	if patch.BreakEnd != nil {
		av.BreakEnd = patch.BreakEnd
	}
	return av
}
