package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"darimaids/models"
	"darimaids/services/backend"
	"darimaids/services/booking"
	"darimaids/services/payment"
	"darimaids/services/worker"
	"darimaids/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", models.NewValidationError("please fill in all fields", "email"), http.StatusBadRequest, "please fill in all fields"},
		{"unknown field", fmt.Errorf("%w: %q", models.ErrUnknownField, "colour"), http.StatusBadRequest, ""},
		{"unknown addon", &booking.UnknownAddonError{Name: "Pool"}, http.StatusBadRequest, ""},
		{"session", booking.ErrSessionNotFound, http.StatusNotFound, ""},
		{"in flight", booking.ErrSubmissionInFlight, http.StatusConflict, ""},
		{"not accepted", worker.ErrNotAccepted, http.StatusConflict, ""},
		{"payments off", payment.ErrPaymentsDisabled, http.StatusServiceUnavailable, ""},
		{"checkout missing", fmt.Errorf("%w: cs_x", payment.ErrCheckoutNotFound), http.StatusNotFound, "checkout session not found"},
		{"checkout lookup", fmt.Errorf("%w: boom", payment.ErrCheckoutUnavailable), http.StatusBadGateway, "unable to verify the payment, please try again"},
		{"backend rejected", &backend.APIError{StatusCode: 200, Message: "Invalid bank details"}, http.StatusUnprocessableEntity, "Invalid bank details"},
		{"backend garbled", &backend.APIError{StatusCode: 200, Message: "unexpected response from the booking service", Err: errors.New("bad json")}, http.StatusBadGateway, ""},
		{"backend 4xx", &backend.APIError{StatusCode: 422, Message: "Slot taken"}, 422, "Slot taken"},
		{"backend 5xx", &backend.APIError{StatusCode: 500, Message: "oops"}, http.StatusBadGateway, "oops"},
		{"unreachable", &backend.APIError{Message: "Unable to reach the booking service. Please try again."}, http.StatusBadGateway, ""},
		{"timeout", &backend.APIError{Message: "slow", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "slow"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			} else {
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}

func TestRespondErrorValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", nil)

	respondError(c, models.NewValidationError("missing", "date", "time"))

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "date,time", body.Details)
}

func TestBindJSONReportsFieldsByJSONName(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"bankName":"Chase","accountNumber":"12-34"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var in models.BankInput
	assert.False(t, bindJSON(c, &in))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "please fill in all fields", body.Message)
	assert.Equal(t, "accountName", body.Details)
}

func TestBindJSONMalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"bankName":`))
	c.Request.Header.Set("Content-Type", "application/json")

	var in models.BankInput
	assert.False(t, bindJSON(c, &in))

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", body.Message)
}
