package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
)

// Controller шаги публичного бронирования: даты -> опции -> данные клиента -> подтверждение.
// Всё состояние хранится в Store, сам Controller без состояния.
type Controller struct {
	store        Store
	calendar     *calendar.Controller
	availability AvailabilityChecker
	booker       BookingCreator
	attributes   AttributeRepository
	metrics      Metrics
	now          func() time.Time
	newID        func() string
	logger       Logger
}

// NewController создает контроллер сессий бронирования
func NewController(
	store Store,
	cal *calendar.Controller,
	availability AvailabilityChecker,
	booker BookingCreator,
	attributes AttributeRepository,
	metrics Metrics,
	logger Logger,
) *Controller {
	return &Controller{
		store:        store,
		calendar:     cal,
		availability: availability,
		booker:       booker,
		attributes:   attributes,
		metrics:      metrics,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
		logger:       logger,
	}
}

// Start новая сессия на шаге выбора дат
func (c *Controller) Start(ctx context.Context) (*State, error) {
	now := c.now()
	state := &State{
		ID:        c.newID(),
		Step:      StepDates,
		View:      c.calendar.NewView(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.store.Create(ctx, state); err != nil {
		c.logger.Error("Flow.Start: store error: %v", err)
		return nil, fmt.Errorf("%w: Start - store error: %v", ErrInternal, err)
	}

	c.metrics.IncFlowStep("start")
	c.logger.Info("Flow.Start: id=%s", state.ID)
	return state, nil
}

// Get текущее состояние
func (c *Controller) Get(ctx context.Context, id string) (*State, error) {
	state, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, c.storeError("Get", id, err)
	}
	return state, nil
}

// Restart удаляет сессию
func (c *Controller) Restart(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return c.storeError("Restart", id, err)
	}
	c.logger.Info("Flow.Restart: id=%s", id)
	return nil
}

// Calendar отрисованные месяцы выбора дат
func (c *Controller) Calendar(ctx context.Context, id string) (*State, []calendar.RenderedMonth, error) {
	state, err := c.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return state, c.calendar.Render(state.View), nil
}

// Click клик по дате. Новый полный диапазон запускает проверку доступности,
// сброс диапазона очищает результаты и выбор кемпера.
func (c *Controller) Click(ctx context.Context, id string, d calendar.Date) (*State, error) {
	return c.update(ctx, id, "click", func(ctx context.Context, state *State) error {
		view, event := c.calendar.Click(state.View, d)
		state.View = view
		return c.apply(ctx, state, event)
	})
}

// Navigate листает месяцы
func (c *Controller) Navigate(ctx context.Context, id string, months int) (*State, error) {
	return c.update(ctx, id, "navigate", func(ctx context.Context, state *State) error {
		view, event, err := c.calendar.Navigate(state.View, months)
		if err != nil {
			return err
		}
		state.View = view
		return c.apply(ctx, state, event)
	})
}

// SelectCamper выбор свободного кемпера из последней проверки доступности
func (c *Controller) SelectCamper(ctx context.Context, id string, camperID int64) (*State, error) {
	return c.update(ctx, id, string(StepAttributes), func(ctx context.Context, state *State) error {
		if state.Range == nil || state.RangeIssue != nil {
			return &StepError{Step: StepAttributes, Back: StepDates}
		}

		option, ok := state.Option(camperID)
		if !ok || !option.Available {
			return ErrCamperNotOffered
		}

		state.CamperID = &option.CamperID
		state.AttributeIDs = nil
		state.Price = &Price{
			BillableDays: state.BillableDays,
			BasePrice:    option.Price,
			TotalPrice:   option.Price,
		}
		state.Step = StepAttributes
		return nil
	})
}

// SetAttributes выбор опций и пересчёт стоимости
func (c *Controller) SetAttributes(ctx context.Context, id string, attributeIDs []int64) (*State, error) {
	return c.update(ctx, id, string(StepCustomer), func(ctx context.Context, state *State) error {
		if state.CamperID == nil || state.Price == nil {
			return &StepError{Step: StepCustomer, Back: StepDates}
		}

		attrs, err := c.loadAttributes(ctx, attributeIDs)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(attrs))
		for _, a := range attrs {
			ids = append(ids, a.ID)
		}

		extras := domain.AttributesPrice(attrs, state.BillableDays)
		state.AttributeIDs = ids
		state.Price.AttributesPrice = extras
		state.Price.TotalPrice = domain.RoundPrice(state.Price.BasePrice + extras)
		state.Step = StepCustomer
		return nil
	})
}

// SubmitCustomer создаёт бронирование по накопленному состоянию
func (c *Controller) SubmitCustomer(ctx context.Context, id string, customer Customer) (*State, error) {
	return c.update(ctx, id, string(StepConfirmation), func(ctx context.Context, state *State) error {
		if state.CamperID == nil || state.Range == nil {
			return &StepError{Step: StepConfirmation, Back: StepDates}
		}
		if !state.Step.Reached(StepCustomer) {
			return &StepError{Step: StepConfirmation, Back: StepAttributes}
		}

		resp, err := c.booker.Execute(ctx, &create_booking.Request{
			CamperID:        *state.CamperID,
			StartDate:       state.Range.Start,
			EndDate:         state.Range.End,
			CustomerName:    customer.Name,
			CustomerEmail:   customer.Email,
			CustomerPhone:   customer.Phone,
			CustomerMessage: customer.Message,
			AttributeIDs:    state.AttributeIDs,
		})
		if err != nil {
			return err
		}

		booking := resp.Booking
		state.Customer = &Customer{
			Name:    booking.CustomerName,
			Email:   booking.CustomerEmail,
			Phone:   booking.CustomerPhone,
			Message: booking.CustomerMessage,
		}
		state.BookingID = &booking.ID
		state.Status = string(booking.Status)
		state.Price = &Price{
			BillableDays:    resp.Quote.BillableDays,
			BasePrice:       booking.BasePrice,
			AttributesPrice: booking.AttributesPrice,
			TotalPrice:      booking.TotalPrice,
		}
		state.Step = StepConfirmation
		return nil
	})
}

// update загружает состояние, применяет fn и сохраняет с проверкой версии
func (c *Controller) update(ctx context.Context, id, step string, fn func(ctx context.Context, state *State) error) (*State, error) {
	state, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, c.storeError("Flow."+step, id, err)
	}

	if state.Completed() {
		c.logger.Warn("Flow.%s: id=%s already completed with booking id=%d", step, id, *state.BookingID)
		return nil, ErrCompleted
	}

	if err := fn(ctx, state); err != nil {
		c.logger.Warn("Flow.%s: id=%s rejected: %v", step, id, err)
		return nil, err
	}

	state.UpdatedAt = c.now()
	if err := c.store.Save(ctx, state); err != nil {
		return nil, c.storeError("Flow."+step, id, err)
	}

	c.metrics.IncFlowStep(step)
	c.logger.Info("Flow.%s: id=%s step=%s version=%d", step, id, state.Step, state.Version)
	return state, nil
}

// apply реагирует на событие календаря
func (c *Controller) apply(ctx context.Context, state *State, event calendar.Event) error {
	switch event.Kind {
	case calendar.EventCleared:
		state.clearRange()
	case calendar.EventCommit:
		state.clearRange()
		rng := event.Range
		state.Range = &rng
		return c.checkAvailability(ctx, state, rng)
	}
	return nil
}

func (c *Controller) checkAvailability(ctx context.Context, state *State, rng calendar.Range) error {
	resp, err := c.availability.Execute(ctx, &check_availability.Request{StartDate: rng.Start, EndDate: rng.End})
	if err != nil {
		if issue := rangeIssue(err); issue != nil {
			state.RangeIssue = issue
			return nil
		}
		return err
	}

	state.BillableDays = resp.BillableDays
	state.Options = make([]CamperOption, 0, len(resp.Availability))
	for _, a := range resp.Availability {
		state.Options = append(state.Options, CamperOption{
			CamperID:  a.Camper.ID,
			Name:      a.Camper.Name,
			Available: a.Available,
			Price:     a.Price,
		})
	}
	return nil
}

func (c *Controller) loadAttributes(ctx context.Context, ids []int64) ([]domain.Attribute, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := c.attributes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: loadAttributes - repository error: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Attribute, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	seen := make(map[int64]bool, len(ids))
	result := make([]domain.Attribute, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		a, ok := byID[id]
		if !ok || !a.IsActive {
			return nil, fmt.Errorf("%w: id=%d", create_booking.ErrAttributeNotFound, id)
		}
		result = append(result, *a)
	}
	return result, nil
}

func (c *Controller) storeError(op, id string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		c.logger.Warn("%s: id=%s: %v", op, id, err)
		return err
	}
	c.logger.Error("%s: id=%s store error: %v", op, id, err)
	return fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
}

// rangeIssue ошибка проверки диапазона превращается в часть состояния
func rangeIssue(err error) *RangeIssue {
	var lengthErr *domain.LengthError
	switch {
	case errors.As(err, &lengthErr) && lengthErr.TooShort:
		return &RangeIssue{Code: IssueTooShort, Limit: lengthErr.Limit}
	case errors.As(err, &lengthErr):
		return &RangeIssue{Code: IssueTooLong, Limit: lengthErr.Limit}
	case errors.Is(err, domain.ErrPastDate):
		return &RangeIssue{Code: IssuePastDate}
	case errors.Is(err, domain.ErrInvalidRange):
		return &RangeIssue{Code: IssueInvalidRange}
	}
	return nil
}
