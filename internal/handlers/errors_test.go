package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"TRECGEN/internal/contract"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation failure",
			err:        &services.ValidationFailedError{Errors: []contract.FieldError{{Path: "parties.buyer", Message: "bad"}}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "field_errors",
		},
		{
			name:       "insufficient credits",
			err:        &services.InsufficientCreditsError{Required: 3, Available: 1},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `"available":1`,
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "Not found",
		},
		{
			name:       "anything else is opaque",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			respondError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %q", w.Body.String(), tt.wantBody)
			}
			// Internal details never leak to the client.
			if tt.wantStatus == http.StatusInternalServerError && strings.Contains(w.Body.String(), "exploded") {
				t.Errorf("internal error leaked: %s", w.Body.String())
			}
		})
	}
}
