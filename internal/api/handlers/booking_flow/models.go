package booking_flow

import (
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/flow"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
)

// StateResponse состояние сессии; range_error текст причины на языке запроса
type StateResponse struct {
	*flow.State
	RangeError string `json:"range_error,omitempty"`
}

// CalendarResponse состояние и месяцы для выбора дат
type CalendarResponse struct {
	State  *StateResponse           `json:"state"`
	Months []calendar.RenderedMonth `json:"months"`
}

type ClickRequest struct {
	Date string `json:"date"` // "2025-07-10"
}

// maxNavigateMonths наибольший сдвиг за один запрос
const maxNavigateMonths = 120

type NavigateRequest struct {
	Months int `json:"months"`
}

type CamperRequest struct {
	CamperID int64 `json:"camper_id"`
}

type AttributesRequest struct {
	AttributeIDs []int64 `json:"attribute_ids"`
}

// CustomerRequest данные клиента, поля как в POST /bookings
type CustomerRequest struct {
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerMessage *string `json:"customer_message,omitempty"`
}

func (c *CustomerRequest) ToCustomer() flow.Customer {
	return flow.Customer{
		Name:    c.CustomerName,
		Email:   c.CustomerEmail,
		Phone:   c.CustomerPhone,
		Message: c.CustomerMessage,
	}
}

// FromState добавляет локализованную причину отказа в диапазоне
func FromState(r *http.Request, state *flow.State) *StateResponse {
	resp := &StateResponse{State: state}
	if state.RangeIssue == nil {
		return resp
	}

	switch state.RangeIssue.Code {
	case flow.IssueTooShort:
		resp.RangeError = handlers.Msg(r, i18n.TooShort, state.RangeIssue.Limit)
	case flow.IssueTooLong:
		resp.RangeError = handlers.Msg(r, i18n.TooLong, state.RangeIssue.Limit)
	case flow.IssuePastDate:
		resp.RangeError = handlers.Msg(r, i18n.PastDate)
	default:
		resp.RangeError = handlers.Msg(r, i18n.InvalidDateRange)
	}
	return resp
}

// StepErrorResponse 409 с шагом, к которому нужно вернуться
type StepErrorResponse struct {
	Detail string    `json:"detail"`
	Back   flow.Step `json:"back"`
}
