package update_booking

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

	"github.com/m04kA/Truckify-BookingService/internal/service/bookings"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func put(svc BookingService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{id}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, strings.NewReader(body)))
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(12), mock.MatchedBy(func(req *models.UpdateBookingRequest) bool {
		return req.Status != nil && *req.Status == "confirmed" &&
			req.PaymentStatus != nil && *req.PaymentStatus == "paid" &&
			req.CustomerName == nil
	})).Return(&models.BookingResponse{ID: 12, Status: "confirmed", PaymentStatus: "paid"}, nil)

	rec := put(svc, "/bookings/12", `{"status":"confirmed","payment_status":"paid"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"unknown booking", "/bookings/12", `{"status":"confirmed"}`,
			fmt.Errorf("%w: id=12", bookings.ErrBookingNotFound), http.StatusNotFound, "Booking not found"},
		{"reactivation overlaps", "/bookings/12", `{"status":"reserved"}`,
			fmt.Errorf("%w: overlaps booking 3", bookings.ErrDatesUnavailable), http.StatusConflict,
			"The camper is not available for the selected dates"},
		{"unknown status", "/bookings/12", `{"status":"archived"}`,
			fmt.Errorf("%w: unknown status %q", bookings.ErrInvalidInput, "archived"), http.StatusBadRequest,
			`Validation failed: unknown status "archived"`},
		{"storage failure", "/bookings/12", `{"status":"confirmed"}`,
			fmt.Errorf("update: connection reset"), http.StatusInternalServerError, "Internal server error"},
		{"invalid id", "/bookings/abc", `{}`, nil, http.StatusBadRequest, "Invalid identifier"},
		{"malformed body", "/bookings/12", `{"status":`, nil, http.StatusBadRequest, "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("Update", mock.Anything, int64(12), mock.Anything).Return(nil, tt.err)
			}

			rec := put(svc, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tt.wantDetail), rec.Body.String())
			if tt.err == nil {
				svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
