package booking_flow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/flow"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	createBooking "github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
	"github.com/m04kA/Truckify-BookingService/pkg/ptr"
)

type mockController struct{ mock.Mock }

func (m *mockController) state(args mock.Arguments) (*flow.State, error) {
	if v := args.Get(0); v != nil {
		return v.(*flow.State), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockController) Start(ctx context.Context) (*flow.State, error) {
	return m.state(m.Called(ctx))
}

func (m *mockController) Get(ctx context.Context, id string) (*flow.State, error) {
	return m.state(m.Called(ctx, id))
}

func (m *mockController) Restart(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockController) Calendar(ctx context.Context, id string) (*flow.State, []calendar.RenderedMonth, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*flow.State), args.Get(1).([]calendar.RenderedMonth), args.Error(2)
	}
	return nil, nil, args.Error(2)
}

func (m *mockController) Click(ctx context.Context, id string, d calendar.Date) (*flow.State, error) {
	return m.state(m.Called(ctx, id, d))
}

func (m *mockController) Navigate(ctx context.Context, id string, months int) (*flow.State, error) {
	return m.state(m.Called(ctx, id, months))
}

func (m *mockController) SelectCamper(ctx context.Context, id string, camperID int64) (*flow.State, error) {
	return m.state(m.Called(ctx, id, camperID))
}

func (m *mockController) SetAttributes(ctx context.Context, id string, attributeIDs []int64) (*flow.State, error) {
	return m.state(m.Called(ctx, id, attributeIDs))
}

func (m *mockController) SubmitCustomer(ctx context.Context, id string, customer flow.Customer) (*flow.State, error) {
	return m.state(m.Called(ctx, id, customer))
}

func newRouter(ctrl FlowController) *mux.Router {
	h := NewHandler(ctrl, logger.Nop())
	r := mux.NewRouter()
	r.HandleFunc("/flow", h.Start).Methods(http.MethodPost)
	r.HandleFunc("/flow/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/flow/{id}", h.Restart).Methods(http.MethodDelete)
	r.HandleFunc("/flow/{id}/calendar/click", h.Click).Methods(http.MethodPost)
	r.HandleFunc("/flow/{id}/calendar/navigate", h.Navigate).Methods(http.MethodPost)
	r.HandleFunc("/flow/{id}/camper", h.SelectCamper).Methods(http.MethodPost)
	r.HandleFunc("/flow/{id}/customer", h.SubmitCustomer).Methods(http.MethodPost)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

var march2024 = calendar.View{Displayed: calendar.NewMonth(2024, 3)}

func TestClick_RangeIssueLocalized(t *testing.T) {
	ctrl := &mockController{}
	ctrl.On("Click", mock.Anything, "abc", calendar.NewDate(2024, 3, 10)).Return(&flow.State{
		ID:         "abc",
		Step:       flow.StepDates,
		View:       march2024,
		RangeIssue: &flow.RangeIssue{Code: flow.IssueTooShort, Limit: 3},
	}, nil)

	rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/calendar/click", `{"date":"2024-03-10"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "Minimum booking length is 3 days", resp.RangeError)
	ctrl.AssertExpectations(t)
}

func TestClick_InvalidDate(t *testing.T) {
	ctrl := &mockController{}

	rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/calendar/click", `{"date":"10.03.2024"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ctrl.AssertNotCalled(t, "Click", mock.Anything, mock.Anything, mock.Anything)
}

func TestGet_StateWithoutView(t *testing.T) {
	ctrl := &mockController{}
	ctrl.On("Get", mock.Anything, "abc").Return(&flow.State{ID: "abc", Step: flow.StepDates}, nil)

	rec := do(t, newRouter(ctrl), http.MethodGet, "/flow/abc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.View.Displayed.IsZero())
}

func TestNavigate(t *testing.T) {
	t.Run("moves the view", func(t *testing.T) {
		ctrl := &mockController{}
		ctrl.On("Navigate", mock.Anything, "abc", 1).Return(&flow.State{
			ID:   "abc",
			Step: flow.StepDates,
			View: calendar.View{Displayed: calendar.NewMonth(2024, 4)},
		}, nil)

		rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/calendar/navigate", `{"months":1}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp StateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, calendar.NewMonth(2024, 4), resp.View.Displayed)
	})

	t.Run("step too large", func(t *testing.T) {
		ctrl := &mockController{}

		for _, body := range []string{`{"months":96000}`, `{"months":-121}`} {
			rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/calendar/navigate", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
		ctrl.AssertNotCalled(t, "Navigate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("calendar boundary", func(t *testing.T) {
		ctrl := &mockController{}
		ctrl.On("Navigate", mock.Anything, "abc", 120).
			Return(nil, fmt.Errorf("%w: navigate +120", calendar.ErrOutOfRange))

		rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/calendar/navigate", `{"months":120}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Invalid request"}`, rec.Body.String())
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", flow.ErrNotFound, http.StatusNotFound, "Booking session expired or not found"},
		{"conflict", flow.ErrConflict, http.StatusConflict, "Booking session was changed in another window, reload and try again"},
		{"completed", flow.ErrCompleted, http.StatusConflict, "This booking is already confirmed, start a new booking to change it"},
		{"step", &flow.StepError{Step: flow.StepAttributes, Back: flow.StepDates}, http.StatusConflict, "Please complete the dates step first"},
		{"not offered", flow.ErrCamperNotOffered, http.StatusConflict, "The selected camper is not available"},
		{"internal", fmt.Errorf("%w: boom", flow.ErrInternal), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &mockController{}
			ctrl.On("SelectCamper", mock.Anything, "abc", int64(7)).Return(nil, tt.err)

			rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/camper", `{"camper_id":7}`)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body["detail"])
		})
	}
}

func TestStepErrorNamesBackStep(t *testing.T) {
	ctrl := &mockController{}
	ctrl.On("SelectCamper", mock.Anything, "abc", int64(7)).
		Return(nil, &flow.StepError{Step: flow.StepAttributes, Back: flow.StepDates})

	rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/camper", `{"camper_id":7}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"detail":"Please complete the dates step first","back":"dates"}`, rec.Body.String())
}

func TestSubmitCustomer(t *testing.T) {
	customer := flow.Customer{Name: "Anna", Email: "anna@example.com", Phone: ptr.Ptr("+49 1")}

	t.Run("confirmed", func(t *testing.T) {
		ctrl := &mockController{}
		ctrl.On("SubmitCustomer", mock.Anything, "abc", customer).Return(&flow.State{
			ID:        "abc",
			Step:      flow.StepConfirmation,
			View:      march2024,
			BookingID: ptr.Ptr(int64(42)),
			Status:    "reserved",
		}, nil)

		rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/customer",
			`{"customer_name":"Anna","customer_email":"anna@example.com","customer_phone":"+49 1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp StateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, flow.StepConfirmation, resp.Step)
		require.NotNil(t, resp.BookingID)
		assert.Equal(t, int64(42), *resp.BookingID)
	})

	t.Run("dates taken meanwhile", func(t *testing.T) {
		ctrl := &mockController{}
		ctrl.On("SubmitCustomer", mock.Anything, "abc", customer).
			Return(nil, fmt.Errorf("%w: overlap", createBooking.ErrDatesUnavailable))

		rec := do(t, newRouter(ctrl), http.MethodPost, "/flow/abc/customer",
			`{"customer_name":"Anna","customer_email":"anna@example.com","customer_phone":"+49 1"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), i18n.Default.T("en", i18n.DatesUnavailable))
	})
}

func TestRestart(t *testing.T) {
	ctrl := &mockController{}
	ctrl.On("Restart", mock.Anything, "abc").Return(nil)
	ctrl.On("Restart", mock.Anything, "gone").Return(flow.ErrNotFound)

	router := newRouter(ctrl)
	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/flow/abc", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/flow/gone", "").Code)
}
