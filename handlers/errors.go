package handlers

import (
	"errors"
	"net/http"
	"strings"

	"darimaids/models"
	"darimaids/services/backend"
	"darimaids/services/booking"
	"darimaids/services/payment"
	"darimaids/services/worker"
	"darimaids/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// respondError maps domain and backend errors to a JSON error response.
func respondError(c *gin.Context, err error) {
	var (
		verr    *models.ValidationError
		addon   *booking.UnknownAddonError
		apiErr  *backend.APIError
		message = err.Error()
		details string
		status  int
	)

	switch {
	case errors.As(err, &verr):
		status, message, details = http.StatusBadRequest, verr.Reason, strings.Join(verr.Fields, ",")
	case errors.Is(err, models.ErrUnknownField), errors.Is(err, models.ErrDerivedField), errors.As(err, &addon):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrSubmissionInFlight):
		status = http.StatusConflict
	case errors.Is(err, worker.ErrAssignmentNotFound), errors.Is(err, worker.ErrNoBankAccount):
		status = http.StatusNotFound
	case errors.Is(err, worker.ErrNotAccepted):
		status = http.StatusConflict
	case errors.Is(err, payment.ErrInvalidCheckoutID):
		status = http.StatusBadRequest
	case errors.Is(err, payment.ErrPaymentsDisabled):
		status = http.StatusServiceUnavailable
	case errors.Is(err, payment.ErrCheckoutNotFound):
		status, message = http.StatusNotFound, payment.ErrCheckoutNotFound.Error()
	case errors.Is(err, payment.ErrCheckoutUnavailable):
		status, message = http.StatusBadGateway, payment.ErrCheckoutUnavailable.Error()
	case errors.As(err, &apiErr):
		status, message = backendStatus(apiErr), backend.Message(err)
	default:
		getLogger(c).Error("Unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		status, message = http.StatusInternalServerError, "An unexpected error occurred"
	}

	utils.JSONError(c, status, message, details)
}

// backendStatus picks the status to relay for a failed backend call.
func backendStatus(e *backend.APIError) int {
	switch {
	case e.StatusCode == 0 && transportTimedOut(e):
		return http.StatusGatewayTimeout
	case e.StatusCode == 0, e.StatusCode >= 500:
		return http.StatusBadGateway
	case e.StatusCode < 400 && e.Err == nil:
		// {"success": false} on a 2xx answer
		return http.StatusUnprocessableEntity
	case e.StatusCode < 400:
		return http.StatusBadGateway
	default:
		return e.StatusCode
	}
}

func transportTimedOut(e *backend.APIError) bool {
	var te interface{ Timeout() bool }
	return errors.As(e.Err, &te) && te.Timeout()
}

// bindJSON decodes and validates the body or writes a 400.
func bindJSON(c *gin.Context, v interface{}) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}
	var failures validator.ValidationErrors
	if errors.As(err, &failures) {
		respondError(c, models.AsValidationError("please fill in all fields", err))
		return false
	}
	utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
	return false
}
