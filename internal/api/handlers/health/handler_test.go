package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Truckify-BookingService/pkg/logger"
)

func ok(context.Context) error { return nil }

func TestLive(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil, logger.Nop()).Live(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all ok",
			checks:     map[string]Check{"postgres": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`,
		},
		{
			name: "redis down",
			checks: map[string]Check{
				"postgres": ok,
				"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"postgres":"ok","redis":"unavailable"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(tt.checks, logger.Nop()).Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
