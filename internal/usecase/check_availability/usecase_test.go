package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
)

type mockCamperRepo struct{ mock.Mock }

func (m *mockCamperRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Camper, error) {
	args := m.Called(ctx, includeInactive)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Camper), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) ListOverlapping(ctx context.Context, rng calendar.Range, camperID *int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, rng, camperID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type staticSettings struct{ s domain.Settings }

func (p staticSettings) Current(context.Context) (*domain.Settings, error) {
	s := p.s
	return &s, nil
}

type countingMetrics struct{ outcomes []string }

func (m *countingMetrics) IncAvailabilityCheck(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func campers() []*domain.Camper {
	return []*domain.Camper{
		{ID: 1, Name: "Zebra Van", PricePerDay: 100, IsActive: true},
		{ID: 2, Name: "Alpine Truck", PricePerDay: 80, IsActive: true},
	}
}

func newUseCase(br *mockBookingRepo, settings domain.Settings, m *countingMetrics) *UseCase {
	cr := &mockCamperRepo{}
	cr.On("List", mock.Anything, false).Return(campers(), nil)
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.Local)
	return NewUseCase(cr, br, staticSettings{settings}, m, logger.Nop()).WithTimeProvider(fixedTime{now})
}

func TestExecute_MarksOverlappingCamperUnavailable(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("ListOverlapping", mock.Anything, mock.Anything, (*int64)(nil)).Return([]*domain.Booking{
		{ID: 10, CamperID: 1, StartDate: calendar.NewDate(2025, 7, 12), EndDate: calendar.NewDate(2025, 7, 20), Status: domain.StatusConfirmed},
	}, nil)
	m := &countingMetrics{}
	uc := newUseCase(br, domain.DefaultSettings(), m)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: calendar.NewDate(2025, 7, 10),
		EndDate:   calendar.NewDate(2025, 7, 14),
	})
	require.NoError(t, err)

	require.Len(t, resp.Availability, 2)
	assert.Equal(t, "Alpine Truck", resp.Availability[0].Camper.Name)
	assert.True(t, resp.Availability[0].Available)
	assert.Equal(t, 400.0, resp.Availability[0].Price)
	assert.False(t, resp.Availability[1].Available)
	assert.Equal(t, 5, resp.BillableDays)
	assert.Equal(t, []string{"available"}, m.outcomes)
}

func TestExecute_PerNightPricing(t *testing.T) {
	br := &mockBookingRepo{}
	br.On("ListOverlapping", mock.Anything, mock.Anything, (*int64)(nil)).Return([]*domain.Booking{}, nil)
	settings := domain.DefaultSettings()
	settings.ChargeType = domain.ChargePerNight
	uc := newUseCase(br, settings, &countingMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: calendar.NewDate(2025, 7, 10),
		EndDate:   calendar.NewDate(2025, 7, 14),
	})
	require.NoError(t, err)

	a, ok := resp.Find(1)
	require.True(t, ok)
	assert.Equal(t, 400.0, a.Price)
	assert.Equal(t, 4, resp.BillableDays)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"reversed", Request{calendar.NewDate(2025, 7, 14), calendar.NewDate(2025, 7, 10)}, domain.ErrInvalidRange},
		{"past", Request{calendar.NewDate(2025, 6, 20), calendar.NewDate(2025, 7, 10)}, domain.ErrPastDate},
		{"too long", Request{calendar.NewDate(2025, 7, 2), calendar.NewDate(2026, 7, 10)}, domain.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &countingMetrics{}
			br := &mockBookingRepo{}
			uc := newUseCase(br, domain.DefaultSettings(), m)

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{"invalid"}, m.outcomes)
			br.AssertNotCalled(t, "ListOverlapping", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCompute_IgnoresCancelledAndInactive(t *testing.T) {
	rng := calendar.NewRange(calendar.NewDate(2025, 7, 10), calendar.NewDate(2025, 7, 11))
	list := append(campers(), &domain.Camper{ID: 3, Name: "Retired", IsActive: false})
	bookings := []*domain.Booking{
		{CamperID: 1, StartDate: calendar.NewDate(2025, 7, 11), EndDate: calendar.NewDate(2025, 7, 11), Status: domain.StatusCancelled},
		{CamperID: 2, StartDate: calendar.NewDate(2025, 7, 11), EndDate: calendar.NewDate(2025, 7, 13), Status: domain.StatusReserved},
	}

	result := Compute(list, bookings, rng, domain.ChargePerDay)
	require.Len(t, result, 2)
	assert.False(t, result[0].Available) // Alpine Truck: пересечение в последний день
	assert.True(t, result[1].Available)  // Zebra Van: только отменённое бронирование
}
