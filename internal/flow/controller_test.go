package flow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/flow"
	"github.com/m04kA/Truckify-BookingService/internal/infra/storage/flowstate"
	"github.com/m04kA/Truckify-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
)

var now = time.Date(2025, 7, 1, 10, 0, 0, 0, time.Local)

type stubAvailability struct {
	calls int
	err   error
}

func (s *stubAvailability) Execute(_ context.Context, req *check_availability.Request) (*check_availability.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	rng := calendar.NewRange(req.StartDate, req.EndDate)
	campers := []*domain.Camper{
		{ID: 1, Name: "Van", PricePerDay: 100, IsActive: true},
		{ID: 2, Name: "Truck", PricePerDay: 150, IsActive: true},
	}
	busy := []*domain.Booking{{CamperID: 2, StartDate: rng.Start, EndDate: rng.Start, Status: domain.StatusConfirmed}}
	return &check_availability.Response{
		Range:        rng,
		ChargeType:   domain.ChargePerDay,
		BillableDays: rng.Days(),
		Availability: check_availability.Compute(campers, busy, rng, domain.ChargePerDay),
	}, nil
}

type stubBooker struct {
	last *create_booking.Request
	err  error
}

func (s *stubBooker) Execute(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &create_booking.Response{
		Booking: &domain.Booking{
			ID:              77,
			CamperID:        req.CamperID,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			BasePrice:       300,
			AttributesPrice: 30,
			TotalPrice:      330,
			Status:          domain.StatusReserved,
		},
		Quote: domain.Quote{BillableDays: 3, BasePrice: 300, AttributesPrice: 30, TotalPrice: 330},
	}, nil
}

type stubAttributes struct{}

func (stubAttributes) GetByIDs(_ context.Context, ids []int64) ([]*domain.Attribute, error) {
	all := map[int64]*domain.Attribute{
		5: {ID: 5, Name: "Bike rack", Price: 10, IsActive: true},
		6: {ID: 6, Name: "Old tent", Price: 20, IsActive: false},
	}
	var result []*domain.Attribute
	for _, id := range ids {
		if a, ok := all[id]; ok {
			result = append(result, a)
		}
	}
	return result, nil
}

type countingMetrics struct{ steps []string }

func (m *countingMetrics) IncFlowStep(step string) { m.steps = append(m.steps, step) }

type fixture struct {
	ctrl         *flow.Controller
	store        *flowstate.MemoryStore
	availability *stubAvailability
	booker       *stubBooker
	metrics      *countingMetrics
}

func newFixture() *fixture {
	f := &fixture{
		store:        flowstate.NewMemoryStore(time.Hour),
		availability: &stubAvailability{},
		booker:       &stubBooker{},
		metrics:      &countingMetrics{},
	}
	cal := calendar.NewController(calendar.BookingPolicy, calendar.WithClock(func() time.Time { return now }))
	f.ctrl = flow.NewController(f.store, cal, f.availability, f.booker, stubAttributes{}, f.metrics, logger.Nop())
	return f
}

func d(day int) calendar.Date { return calendar.NewDate(2025, time.July, day) }

// selectRange проходит шаг выбора дат
func (f *fixture) selectRange(t *testing.T, id string, from, to int) *flow.State {
	t.Helper()
	_, err := f.ctrl.Click(context.Background(), id, d(from))
	require.NoError(t, err)
	state, err := f.ctrl.Click(context.Background(), id, d(to))
	require.NoError(t, err)
	return state
}

func TestFlow_HappyPath(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, flow.StepDates, state.Step)
	assert.Equal(t, "2025-07", state.View.Displayed.String())

	state = f.selectRange(t, state.ID, 10, 12)
	require.NotNil(t, state.Range)
	assert.Equal(t, d(10), state.Range.Start)
	assert.Equal(t, 3, state.BillableDays)
	require.Len(t, state.Options, 2)
	assert.Equal(t, 1, f.availability.calls)

	state, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, flow.StepAttributes, state.Step)
	assert.Equal(t, 300.0, state.Price.BasePrice)

	state, err = f.ctrl.SetAttributes(ctx, state.ID, []int64{5, 5})
	require.NoError(t, err)
	assert.Equal(t, flow.StepCustomer, state.Step)
	assert.Equal(t, []int64{5}, state.AttributeIDs)
	assert.Equal(t, 30.0, state.Price.AttributesPrice)
	assert.Equal(t, 330.0, state.Price.TotalPrice)

	state, err = f.ctrl.SubmitCustomer(ctx, state.ID, flow.Customer{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, flow.StepConfirmation, state.Step)
	require.NotNil(t, state.BookingID)
	assert.Equal(t, int64(77), *state.BookingID)
	assert.Equal(t, "reserved", state.Status)

	require.NotNil(t, f.booker.last)
	assert.Equal(t, int64(1), f.booker.last.CamperID)
	assert.Equal(t, d(12), f.booker.last.EndDate)
	assert.Equal(t, []int64{5}, f.booker.last.AttributeIDs)

	_, err = f.ctrl.Click(ctx, state.ID, d(20))
	assert.ErrorIs(t, err, flow.ErrCompleted)

	assert.Equal(t, []string{"start", "click", "click", "attributes", "customer", "confirmation"}, f.metrics.steps)
}

func TestFlow_StepsRequirePrerequisites(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)

	_, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	var stepErr *flow.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, flow.StepDates, stepErr.Back)
	assert.ErrorIs(t, err, flow.ErrStepNotReached)

	_, err = f.ctrl.SetAttributes(ctx, state.ID, nil)
	assert.ErrorIs(t, err, flow.ErrStepNotReached)

	_, err = f.ctrl.SubmitCustomer(ctx, state.ID, flow.Customer{Name: "Jane", Email: "jane@example.com"})
	assert.ErrorIs(t, err, flow.ErrStepNotReached)

	f.selectRange(t, state.ID, 10, 12)
	_, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	require.NoError(t, err)

	_, err = f.ctrl.SubmitCustomer(ctx, state.ID, flow.Customer{Name: "Jane", Email: "jane@example.com"})
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, flow.StepAttributes, stepErr.Back)
	assert.Nil(t, f.booker.last)
}

func TestFlow_UnavailableCamperRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	f.selectRange(t, state.ID, 10, 12)

	_, err = f.ctrl.SelectCamper(ctx, state.ID, 2)
	assert.ErrorIs(t, err, flow.ErrCamperNotOffered)

	_, err = f.ctrl.SelectCamper(ctx, state.ID, 99)
	assert.ErrorIs(t, err, flow.ErrCamperNotOffered)
}

func TestFlow_InactiveAttributeRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	f.selectRange(t, state.ID, 10, 12)
	_, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	require.NoError(t, err)

	_, err = f.ctrl.SetAttributes(ctx, state.ID, []int64{6})
	assert.ErrorIs(t, err, create_booking.ErrAttributeNotFound)
}

func TestFlow_NewRangeDropsCamper(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	f.selectRange(t, state.ID, 10, 12)
	_, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	require.NoError(t, err)
	_, err = f.ctrl.SetAttributes(ctx, state.ID, []int64{5})
	require.NoError(t, err)

	// Третий клик начинает новый выбор: диапазон сброшен
	state, err = f.ctrl.Click(ctx, state.ID, d(20))
	require.NoError(t, err)
	assert.Nil(t, state.Range)
	assert.Nil(t, state.CamperID)
	assert.Nil(t, state.AttributeIDs)
	assert.Nil(t, state.Price)
	assert.Empty(t, state.Options)
	assert.Equal(t, flow.StepDates, state.Step)

	state, err = f.ctrl.Click(ctx, state.ID, d(22))
	require.NoError(t, err)
	require.NotNil(t, state.Range)
	assert.Equal(t, d(20), state.Range.Start)
	assert.Equal(t, 2, f.availability.calls)
}

func TestFlow_PastAndPaddingClicksIgnored(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)

	state, err = f.ctrl.Click(ctx, state.ID, calendar.NewDate(2025, time.June, 30))
	require.NoError(t, err)
	assert.True(t, state.View.Selection.IsEmpty())

	// Сентябрь не показан: видны июль и август
	state, err = f.ctrl.Click(ctx, state.ID, calendar.NewDate(2025, time.September, 2))
	require.NoError(t, err)
	assert.True(t, state.View.Selection.IsEmpty())
	assert.Equal(t, 0, f.availability.calls)
}

func TestFlow_NavigateKeepsSelection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	f.selectRange(t, state.ID, 10, 12)

	state, err = f.ctrl.Navigate(ctx, state.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-08", state.View.Displayed.String())
	require.NotNil(t, state.Range)
	assert.Len(t, state.Options, 2)
	assert.Equal(t, 1, f.availability.calls)
}

func TestFlow_NavigateOutOfRangeKeepsFlowReadable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)

	_, err = f.ctrl.Navigate(ctx, state.ID, 12*8000)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)

	got, err := f.ctrl.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-07", got.View.Displayed.String())
	assert.Equal(t, state.Version, got.Version)

	got, err = f.ctrl.Navigate(ctx, state.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, "2025-06", got.View.Displayed.String())
}

func TestFlow_RangeIssueStored(t *testing.T) {
	f := newFixture()
	f.availability.err = &domain.LengthError{Limit: 3, TooShort: true}
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)

	state = f.selectRange(t, state.ID, 10, 11)
	require.NotNil(t, state.RangeIssue)
	assert.Equal(t, flow.IssueTooShort, state.RangeIssue.Code)
	assert.Equal(t, 3, state.RangeIssue.Limit)

	_, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	assert.ErrorIs(t, err, flow.ErrStepNotReached)
}

func TestFlow_CalendarRender(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	f.selectRange(t, state.ID, 10, 12)

	_, months, err := f.ctrl.Calendar(ctx, state.ID)
	require.NoError(t, err)
	require.Len(t, months, 2)

	var inRange int
	for _, cell := range months[0].Cells {
		if cell.InRange {
			inRange++
		}
	}
	assert.Equal(t, 3, inRange)
}

func TestFlow_RestartAndMissing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, f.ctrl.Restart(ctx, state.ID))
	_, err = f.ctrl.Get(ctx, state.ID)
	assert.ErrorIs(t, err, flow.ErrNotFound)
	assert.ErrorIs(t, f.ctrl.Restart(ctx, state.ID), flow.ErrNotFound)
}

func TestFlow_BookingFailureKeepsState(t *testing.T) {
	f := newFixture()
	f.booker.err = create_booking.ErrDatesUnavailable
	ctx := context.Background()
	state, err := f.ctrl.Start(ctx)
	require.NoError(t, err)
	f.selectRange(t, state.ID, 10, 12)
	_, err = f.ctrl.SelectCamper(ctx, state.ID, 1)
	require.NoError(t, err)
	_, err = f.ctrl.SetAttributes(ctx, state.ID, nil)
	require.NoError(t, err)

	_, err = f.ctrl.SubmitCustomer(ctx, state.ID, flow.Customer{Name: "Jane", Email: "jane@example.com"})
	assert.ErrorIs(t, err, create_booking.ErrDatesUnavailable)

	current, err := f.ctrl.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, flow.StepCustomer, current.Step)
	assert.Nil(t, current.BookingID)
}
