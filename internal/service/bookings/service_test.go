package bookings

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
	"github.com/m04kA/Truckify-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListOverlapping(ctx context.Context, rng calendar.Range, camperID *int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, rng, camperID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockCamperRepo struct {
	mock.Mock
}

func (m *mockCamperRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Camper, error) {
	args := m.Called(ctx, includeInactive)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Camper), args.Error(1)
	}
	return nil, args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func date(s string) calendar.Date {
	d, err := calendar.ParseISO(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CamperID:      7,
		StartDate:     date("2025-07-10"),
		EndDate:       date("2025-07-14"),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		BasePrice:     500,
		TotalPrice:    500,
		Status:        status,
		PaymentStatus: domain.PaymentNotPaid,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newService(br *mockBookingRepo, cr *mockCamperRepo) *Service {
	return NewService(br, cr, passthroughTx{}, logger.Nop())
}

func TestService_ListInvalidFilter(t *testing.T) {
	svc := newService(&mockBookingRepo{}, &mockCamperRepo{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("pending")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{
		From: ptr.Ptr("2025-07-10"),
		To:   ptr.Ptr("2025-07-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListPassesFilter(t *testing.T) {
	br := &mockBookingRepo{}
	from := date("2025-07-01")
	br.On("List", mock.Anything, domain.BookingsFilter{From: &from}).
		Return([]*domain.Booking{sampleBooking(1, domain.StatusReserved)}, nil)
	svc := newService(br, &mockCamperRepo{})

	list, err := svc.List(context.Background(), &models.ListBookingsRequest{From: ptr.Ptr("2025-07-01")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "reserved", list[0].Status)
	assert.Equal(t, []int64{}, list[0].SelectedAttributes)
}

func TestService_GetByIDNotFound(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)
	svc := newService(br, &mockCamperRepo{})

	_, err := svc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateStatusAndPayment(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("GetByID", mock.Anything, int64(1)).Return(sampleBooking(1, domain.StatusReserved), nil)
	br.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusConfirmed && b.PaymentStatus == domain.PaymentPaid
	})).Return(sampleBooking(1, domain.StatusConfirmed), nil)
	svc := newService(br, &mockCamperRepo{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status:        ptr.Ptr("confirmed"),
		PaymentStatus: ptr.Ptr("paid"),
	})
	require.NoError(t, err)
	br.AssertNotCalled(t, "ListOverlapping", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateRejectsUnknownPayment(t *testing.T) {
	svc := newService(&mockBookingRepo{}, &mockCamperRepo{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{PaymentStatus: ptr.Ptr("free")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ReactivateChecksOverlap(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("GetByID", mock.Anything, int64(1)).Return(sampleBooking(1, domain.StatusCancelled), nil)
	br.On("ListOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{sampleBooking(2, domain.StatusConfirmed)}, nil)
	svc := newService(br, &mockCamperRepo{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{Status: ptr.Ptr("confirmed")})
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	br.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Cancel(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("GetByID", mock.Anything, int64(1)).Return(sampleBooking(1, domain.StatusConfirmed), nil)
	br.On("UpdateStatus", mock.Anything, int64(1), domain.StatusCancelled).Return(nil)
	br.On("GetByID", mock.Anything, int64(2)).Return(sampleBooking(2, domain.StatusCancelled), nil)
	svc := newService(br, &mockCamperRepo{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.ErrorIs(t, svc.Cancel(context.Background(), 2), ErrAlreadyCancelled)
}

func TestService_Export(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("List", mock.Anything, domain.BookingsFilter{}).
		Return([]*domain.Booking{sampleBooking(1, domain.StatusConfirmed), sampleBooking(2, domain.StatusReserved)}, nil)
	cr := &mockCamperRepo{}
	cr.On("List", mock.Anything, true).Return([]*domain.Camper{{ID: 7, Name: "Big Truck"}}, nil)
	svc := newService(br, cr)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &models.ListBookingsRequest{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportColumns, rows[0])
	assert.Equal(t, "Big Truck", rows[1][1])
	assert.Equal(t, "2025-07-10", rows[1][2])
	assert.Equal(t, "5", rows[1][4])
}
