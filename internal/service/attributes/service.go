package attributes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	attributeRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/attribute"
	"github.com/m04kA/Truckify-BookingService/internal/service/attributes/models"
)

// Service сервис дополнительных опций
type Service struct {
	attributeRepo AttributeRepository
	logger        Logger
}

func NewService(attributeRepo AttributeRepository, logger Logger) *Service {
	return &Service{attributeRepo: attributeRepo, logger: logger}
}

func (s *Service) List(ctx context.Context, includeInactive bool) ([]models.AttributeResponse, error) {
	attrs, err := s.attributeRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAttributeList(attrs), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*models.AttributeResponse, error) {
	attr, err := s.attributeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainAttribute(attr), nil
}

func (s *Service) Create(ctx context.Context, req *models.AttributeRequest) (*models.AttributeResponse, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.attributeRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created attribute id=%d name=%s", created.ID, created.Name)
	return models.FromDomainAttribute(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, req *models.AttributeRequest) (*models.AttributeResponse, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for attribute id=%d: %v", id, err)
		return nil, err
	}

	attr := req.ToDomain()
	attr.ID = id

	updated, err := s.attributeRepo.Update(ctx, attr)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: updated attribute id=%d", id)
	return models.FromDomainAttribute(updated), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.attributeRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	s.logger.Info("Delete: deleted attribute id=%d", id)
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, attributeRepo.ErrAttributeNotFound) {
		s.logger.Warn("%s: attribute id=%d not found", op, id)
		return ErrAttributeNotFound
	}
	s.logger.Error("%s: repository error for attribute id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateRequest(req *models.AttributeRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Price < 0 || req.Price > domain.MaxPrice {
		return fmt.Errorf("%w: price must be between 0 and %d", ErrInvalidInput, domain.MaxPrice)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return nil
}
