package attributes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	attributeRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/attribute"
	"github.com/m04kA/Truckify-BookingService/internal/service/attributes/models"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
	"github.com/m04kA/Truckify-BookingService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, a *domain.Attribute) (*domain.Attribute, error) {
	args := m.Called(ctx, a)
	if v := args.Get(0); v != nil {
		return v.(*domain.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Attribute, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Attribute, error) {
	args := m.Called(ctx, includeInactive)
	return args.Get(0).([]*domain.Attribute), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, a *domain.Attribute) (*domain.Attribute, error) {
	args := m.Called(ctx, a)
	if v := args.Get(0); v != nil {
		return v.(*domain.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateInactive(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, logger.Nop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Attribute) bool {
		return a.Name == "Bike rack" && !a.IsActive && a.Price == 7.5
	})).Return(&domain.Attribute{ID: 1, Name: "Bike rack", Price: 7.5}, nil)

	resp, err := svc.Create(context.Background(), &models.AttributeRequest{
		Name:     "Bike rack ",
		Price:    7.5,
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	repo.AssertExpectations(t)
}

func TestService_Validation(t *testing.T) {
	svc := NewService(&mockRepo{}, logger.Nop())

	_, err := svc.Create(context.Background(), &models.AttributeRequest{Name: "", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.AttributeRequest{Name: "x", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_NotFound(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, logger.Nop())
	repo.On("GetByID", mock.Anything, int64(4)).Return(nil, attributeRepo.ErrAttributeNotFound)
	repo.On("Delete", mock.Anything, int64(4)).Return(attributeRepo.ErrAttributeNotFound)

	_, err := svc.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrAttributeNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), ErrAttributeNotFound)
}
