package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
	camperRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/camper"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
	"github.com/m04kA/Truckify-BookingService/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
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

type mockCamperRepo struct{ mock.Mock }

func (m *mockCamperRepo) GetByID(ctx context.Context, id int64) (*domain.Camper, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Camper), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAttributeRepo struct{ mock.Mock }

func (m *mockAttributeRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Attribute, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

type staticSettings struct{ s domain.Settings }

func (p staticSettings) Current(context.Context) (*domain.Settings, error) {
	s := p.s
	return &s, nil
}

type passthroughTx struct{ calls int }

func (tx *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type recordingMetrics struct{ statuses []string }

func (m *recordingMetrics) IncBookingCreated(status string) {
	m.statuses = append(m.statuses, status)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	bookings   *mockBookingRepo
	campers    *mockCamperRepo
	attributes *mockAttributeRepo
	tx         *passthroughTx
	metrics    *recordingMetrics
	uc         *UseCase
}

func newFixture(settings domain.Settings) *fixture {
	f := &fixture{
		bookings:   &mockBookingRepo{},
		campers:    &mockCamperRepo{},
		attributes: &mockAttributeRepo{},
		tx:         &passthroughTx{},
		metrics:    &recordingMetrics{},
	}
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.Local)
	f.uc = NewUseCase(f.bookings, f.campers, f.attributes, staticSettings{settings}, f.tx, f.metrics, logger.Nop()).
		WithTimeProvider(fixedTime{now})
	return f
}

func validRequest() *Request {
	return &Request{
		CamperID:      1,
		StartDate:     calendar.NewDate(2025, 7, 10),
		EndDate:       calendar.NewDate(2025, 7, 14),
		CustomerName:  "  Jane Doe ",
		CustomerEmail: "jane@example.com",
		CustomerPhone: ptr.Ptr(" "),
		AttributeIDs:  []int64{3, 3},
	}
}

func TestExecute_CreatesPricedBooking(t *testing.T) {
	f := newFixture(domain.DefaultSettings())
	f.campers.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Camper{ID: 1, Name: "Van", PricePerDay: 100, IsActive: true}, nil)
	f.attributes.On("GetByIDs", mock.Anything, []int64{3}).
		Return([]*domain.Attribute{{ID: 3, Name: "Bike rack", Price: 10, IsActive: true}}, nil)
	f.bookings.On("ListOverlapping", mock.Anything, mock.Anything, ptr.Ptr(int64(1))).
		Return([]*domain.Booking{
			{ID: 9, CamperID: 1, StartDate: calendar.NewDate(2025, 7, 1), EndDate: calendar.NewDate(2025, 7, 20), Status: domain.StatusCancelled},
		}, nil)

	var saved *domain.Booking
	f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Booking) }).
		Return(&domain.Booking{ID: 42, Status: domain.StatusReserved, TotalPrice: 550}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "Jane Doe", saved.CustomerName)
	assert.Nil(t, saved.CustomerPhone)
	assert.Equal(t, []int64{3}, saved.SelectedAttributes)
	assert.Equal(t, 500.0, saved.BasePrice)
	assert.Equal(t, 50.0, saved.AttributesPrice)
	assert.Equal(t, 550.0, saved.TotalPrice)
	assert.Equal(t, domain.StatusReserved, saved.Status)
	assert.Equal(t, domain.PaymentNotPaid, saved.PaymentStatus)

	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, 5, resp.Quote.BillableDays)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"reserved"}, f.metrics.statuses)
}

func TestExecute_AutoAcceptConfirms(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.AutoAcceptBookings = true
	f := newFixture(settings)
	f.campers.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Camper{ID: 1, PricePerDay: 100, IsActive: true}, nil)
	f.attributes.On("GetByIDs", mock.Anything, []int64{3}).
		Return([]*domain.Attribute{{ID: 3, Price: 10, IsActive: true}}, nil)
	f.bookings.On("ListOverlapping", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusConfirmed
	})).Return(&domain.Booking{ID: 1, Status: domain.StatusConfirmed}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"confirmed"}, f.metrics.statuses)
}

func TestExecute_DatesUnavailable(t *testing.T) {
	f := newFixture(domain.DefaultSettings())
	f.campers.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Camper{ID: 1, PricePerDay: 100, IsActive: true}, nil)
	f.attributes.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]*domain.Attribute{{ID: 3, Price: 10, IsActive: true}}, nil)
	f.bookings.On("ListOverlapping", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{
		{ID: 5, CamperID: 1, StartDate: calendar.NewDate(2025, 7, 14), EndDate: calendar.NewDate(2025, 7, 16), Status: domain.StatusReserved},
	}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.metrics.statuses)
}

func TestExecute_CamperErrors(t *testing.T) {
	f := newFixture(domain.DefaultSettings())
	f.campers.On("GetByID", mock.Anything, int64(1)).Return(nil, camperRepo.ErrCamperNotFound)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCamperNotFound)

	f = newFixture(domain.DefaultSettings())
	f.campers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Camper{ID: 1, IsActive: false}, nil)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCamperNotAvailable)
}

func TestExecute_InactiveAttribute(t *testing.T) {
	f := newFixture(domain.DefaultSettings())
	f.campers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Camper{ID: 1, IsActive: true}, nil)
	f.attributes.On("GetByIDs", mock.Anything, []int64{3}).
		Return([]*domain.Attribute{{ID: 3, IsActive: false}}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAttributeNotFound)
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"empty name", func(r *Request) { r.CustomerName = " " }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.CustomerEmail = "jane.example.com" }, ErrInvalidInput},
		{"display name email", func(r *Request) { r.CustomerEmail = "Jane <jane@example.com>" }, ErrInvalidInput},
		{"negative attribute", func(r *Request) { r.AttributeIDs = []int64{-1} }, ErrInvalidInput},
		{"past start", func(r *Request) { r.StartDate = calendar.NewDate(2025, 6, 30) }, domain.ErrPastDate},
		{"reversed", func(r *Request) { r.EndDate = calendar.NewDate(2025, 7, 9) }, domain.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(domain.DefaultSettings())
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.campers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}
