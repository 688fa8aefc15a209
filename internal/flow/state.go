package flow

import (
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
)

// Step шаг публичного бронирования
type Step string

const (
	StepDates        Step = "dates"
	StepAttributes   Step = "attributes"
	StepCustomer     Step = "customer"
	StepConfirmation Step = "confirmation"
)

var stepOrder = map[Step]int{
	StepDates:        0,
	StepAttributes:   1,
	StepCustomer:     2,
	StepConfirmation: 3,
}

// Reached шаг s не раньше other
func (s Step) Reached(other Step) bool {
	return stepOrder[s] >= stepOrder[other]
}

// CamperOption кемпер из результата проверки доступности
type CamperOption struct {
	CamperID  int64   `json:"camper_id"`
	Name      string  `json:"name"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// RangeIssue причина, по которой выбранный диапазон не принят
type RangeIssue struct {
	Code  string `json:"code"`
	Limit int    `json:"limit,omitempty"`
}

// Коды RangeIssue
const (
	IssueInvalidRange = "invalid_range"
	IssuePastDate     = "past_date"
	IssueTooShort     = "too_short"
	IssueTooLong      = "too_long"
)

// Price итог по выбранному кемперу и опциям
type Price struct {
	BillableDays    int     `json:"billable_days"`
	BasePrice       float64 `json:"base_price"`
	AttributesPrice float64 `json:"attributes_price"`
	TotalPrice      float64 `json:"total_price"`
}

// Customer данные клиента
type Customer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message *string `json:"message,omitempty"`
}

// State типизированное состояние сессии бронирования
type State struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
	Step    Step   `json:"step"`

	View         calendar.View   `json:"view"`
	Range        *calendar.Range `json:"range,omitempty"`
	RangeIssue   *RangeIssue     `json:"range_issue,omitempty"`
	BillableDays int             `json:"billable_days,omitempty"`
	Options      []CamperOption  `json:"options,omitempty"`

	CamperID     *int64  `json:"camper_id,omitempty"`
	AttributeIDs []int64 `json:"attribute_ids,omitempty"`
	Price        *Price  `json:"price,omitempty"`

	Customer  *Customer `json:"customer,omitempty"`
	BookingID *int64    `json:"booking_id,omitempty"`
	Status    string    `json:"booking_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Option кемпер из последней проверки доступности
func (s *State) Option(camperID int64) (CamperOption, bool) {
	for _, o := range s.Options {
		if o.CamperID == camperID {
			return o, true
		}
	}
	return CamperOption{}, false
}

// Completed бронирование создано
func (s *State) Completed() bool {
	return s.BookingID != nil
}

// clearRange сбрасывает диапазон и всё, что от него зависит
func (s *State) clearRange() {
	s.Range = nil
	s.RangeIssue = nil
	s.BillableDays = 0
	s.Options = nil
	s.clearCamper()
	s.Step = StepDates
}

// clearCamper сбрасывает выбор кемпера и опций
func (s *State) clearCamper() {
	s.CamperID = nil
	s.AttributeIDs = nil
	s.Price = nil
	if s.Step.Reached(StepAttributes) {
		s.Step = StepDates
	}
}
