package calendar

import (
	"fmt"
	"time"
)

// Policy различия между календарём панели управления и календарём бронирования
type Policy struct {
	// Reselect что делать с кликом по третьей дате
	Reselect Reselect
	// KeepOnNavigate сохранять выбор при смене месяца
	KeepOnNavigate bool
	// DisablePast запрещает даты раньше сегодняшней
	DisablePast bool
	// Months сколько месяцев показывается рядом
	Months int
}

var (
	DashboardPolicy = Policy{Reselect: ReselectRestart, KeepOnNavigate: false, DisablePast: false, Months: 2}
	BookingPolicy   = Policy{Reselect: ReselectRestart, KeepOnNavigate: true, DisablePast: true, Months: 2}
)

func (p Policy) months() int {
	if p.Months < 1 {
		return 1
	}
	return p.Months
}

// View состояние календаря, хранится вызывающей стороной
type View struct {
	Displayed Month     `json:"displayed"`
	Selection Selection `json:"selection"`
}

// EventKind что произошло с зафиксированным диапазоном
type EventKind int

const (
	EventNone EventKind = iota
	// EventCommit выбран новый полный диапазон, нужно запросить доступность
	EventCommit
	// EventCleared полный диапазон сброшен, результаты доступности устарели
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventCommit:
		return "commit"
	case EventCleared:
		return "cleared"
	default:
		return "none"
	}
}

// Event результат перехода. Range заполнен только для EventCommit.
type Event struct {
	Kind  EventKind
	Range Range
}

// Controller применяет клики и навигацию к View по правилам Policy
type Controller struct {
	policy Policy
	now    func() time.Time
	grids  *GridCache
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithGridCache(cache *GridCache) Option {
	return func(c *Controller) { c.grids = cache }
}

func NewController(policy Policy, opts ...Option) *Controller {
	c := &Controller{policy: policy, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.grids == nil {
		c.grids = NewGridCache(0)
	}
	return c
}

func (c *Controller) Policy() Policy {
	return c.policy
}

// Today сегодняшняя дата по локальному времени
func (c *Controller) Today() Date {
	return Today(c.now())
}

// NewView начальное состояние: текущий месяц, пустой выбор
func (c *Controller) NewView() View {
	return View{Displayed: MonthOf(c.Today())}
}

// IsDisabled дата в прошлом при политике DisablePast
func (c *Controller) IsDisabled(d Date) bool {
	return c.policy.DisablePast && d.Before(c.Today())
}

// Clickable дата принадлежит одному из показанных месяцев и не запрещена
func (c *Controller) Clickable(v View, d Date) bool {
	if c.IsDisabled(d) {
		return false
	}
	for i := 0; i < c.policy.months(); i++ {
		if v.Displayed.Add(i).Contains(d) {
			return true
		}
	}
	return false
}

// Click клик по дате. Клики по чужим и запрещённым датам ничего не меняют.
func (c *Controller) Click(v View, d Date) (View, Event) {
	if !c.Clickable(v, d) {
		return v, Event{}
	}

	next := v
	next.Selection = v.Selection.Click(d, c.policy.Reselect)
	return next, diff(v.Selection, next.Selection)
}

// Navigate сдвигает показанный месяц на n
func (c *Controller) Navigate(v View, n int) (View, Event, error) {
	if n == 0 {
		return v, Event{}, nil
	}

	const span = (MaxYear - MinYear + 1) * 12
	if n > span || n < -span {
		return v, Event{}, fmt.Errorf("%w: navigate %+d", ErrOutOfRange, n)
	}

	target := v.Displayed.Add(n)
	if !target.Valid() {
		return v, Event{}, fmt.Errorf("%w: navigate %+d from %s", ErrOutOfRange, n, v.Displayed)
	}

	next := View{Displayed: target, Selection: v.Selection}
	if !c.policy.KeepOnNavigate {
		next.Selection = Empty()
	}
	return next, diff(v.Selection, next.Selection), nil
}

// Select устанавливает выбор напрямую (например, из параметров запроса)
func (c *Controller) Select(v View, s Selection) (View, Event) {
	next := View{Displayed: v.Displayed, Selection: s}
	return next, diff(v.Selection, s)
}

func diff(prev, next Selection) Event {
	prevRange, wasCommitted := prev.Range()
	nextRange, isCommitted := next.Range()

	switch {
	case isCommitted && (!wasCommitted || prevRange != nextRange):
		return Event{Kind: EventCommit, Range: nextRange}
	case wasCommitted && !isCommitted:
		return Event{Kind: EventCleared}
	default:
		return Event{}
	}
}

// CellView ячейка с флагами для отрисовки
type CellView struct {
	DayCell
	Today      bool `json:"today"`
	Disabled   bool `json:"disabled"`
	Clickable  bool `json:"clickable"`
	Selected   bool `json:"selected"`
	InRange    bool `json:"in_range"`
	RangeStart bool `json:"range_start"`
	RangeEnd   bool `json:"range_end"`
}

// RenderedMonth один месяц календаря
type RenderedMonth struct {
	Month Month      `json:"month"`
	Cells []CellView `json:"cells"`
}

// Weeks ячейки по строкам
func (m RenderedMonth) Weeks() [][]CellView {
	weeks := make([][]CellView, 0, WeeksPerGrid)
	for i := 0; i+DaysPerWeek <= len(m.Cells); i += DaysPerWeek {
		weeks = append(weeks, m.Cells[i:i+DaysPerWeek])
	}
	return weeks
}

// Render строит Policy.Months месяцев начиная с показанного
func (c *Controller) Render(v View) []RenderedMonth {
	today := c.Today()
	anchor, hasAnchor := v.Selection.Anchor()
	end, hasEnd := v.Selection.End()

	out := make([]RenderedMonth, 0, c.policy.months())
	for i := 0; i < c.policy.months(); i++ {
		m := v.Displayed.Add(i)
		grid := c.grids.Get(m.Year, m.Month)

		rm := RenderedMonth{Month: m, Cells: make([]CellView, 0, GridCells)}
		for _, cell := range grid.Cells {
			cv := CellView{
				DayCell:  cell,
				Today:    cell.Date == today,
				Disabled: c.IsDisabled(cell.Date),
			}
			cv.Clickable = cell.InDisplayedMonth && !cv.Disabled
			if cell.InDisplayedMonth {
				cv.Selected = v.Selection.Contains(cell.Date)
				cv.InRange = v.Selection.IsCommitted() && cv.Selected
				cv.RangeStart = hasAnchor && cell.Date == anchor
				cv.RangeEnd = hasEnd && cell.Date == end
			}
			rm.Cells = append(rm.Cells, cv)
		}
		out = append(out, rm)
	}
	return out
}
