package campers

import (
	"context"
	"errors"
	"fmt"
	"time"

	camperRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/camper"
	"github.com/m04kA/Truckify-BookingService/internal/service/campers/models"
)

// Service сервис для работы с кемперами
type Service struct {
	camperRepo CamperRepository
	now        func() time.Time
	logger     Logger
}

// NewService создает новый экземпляр сервиса кемперов
func NewService(camperRepo CamperRepository, logger Logger) *Service {
	return &Service{
		camperRepo: camperRepo,
		now:        time.Now,
		logger:     logger,
	}
}

// List список кемперов
func (s *Service) List(ctx context.Context, includeInactive bool) ([]models.CamperResponse, error) {
	campers, err := s.camperRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d campers (include_inactive=%t)", len(campers), includeInactive)
	return models.FromDomainCamperList(campers), nil
}

// GetByID получает кемпера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CamperResponse, error) {
	camper, err := s.camperRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, camperRepo.ErrCamperNotFound) {
			s.logger.Warn("GetByID: camper id=%d not found", id)
			return nil, ErrCamperNotFound
		}
		s.logger.Error("GetByID: repository error for camper id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCamper(camper), nil
}

// Create создает кемпера
func (s *Service) Create(ctx context.Context, req *models.CamperRequest) (*models.CamperResponse, error) {
	if err := validateRequest(req, s.now()); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.camperRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created camper id=%d name=%s", created.ID, created.Name)
	return models.FromDomainCamper(created), nil
}

// Update полностью заменяет данные кемпера
func (s *Service) Update(ctx context.Context, id int64, req *models.CamperRequest) (*models.CamperResponse, error) {
	if err := validateRequest(req, s.now()); err != nil {
		s.logger.Warn("Update: validation failed for camper id=%d: %v", id, err)
		return nil, err
	}

	camper := req.ToDomain()
	camper.ID = id

	updated, err := s.camperRepo.Update(ctx, camper)
	if err != nil {
		if errors.Is(err, camperRepo.ErrCamperNotFound) {
			s.logger.Warn("Update: camper id=%d not found", id)
			return nil, ErrCamperNotFound
		}
		s.logger.Error("Update: repository error for camper id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated camper id=%d", id)
	return models.FromDomainCamper(updated), nil
}

// Delete удаляет кемпера без бронирований
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.camperRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, camperRepo.ErrCamperNotFound):
			s.logger.Warn("Delete: camper id=%d not found", id)
			return ErrCamperNotFound
		case errors.Is(err, camperRepo.ErrCamperInUse):
			s.logger.Warn("Delete: camper id=%d has bookings", id)
			return ErrCamperInUse
		default:
			s.logger.Error("Delete: repository error for camper id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: deleted camper id=%d", id)
	return nil
}
