package handlers

import (
	"context"
	"net/http"
	"strings"

	"darimaids/models"
	"darimaids/services/booking"
	"darimaids/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingLookup reads and removes bookings on the backend.
type BookingLookup interface {
	GetBookings(ctx context.Context, email string) ([]models.BookingRecord, error)
	GetPendingBookings(ctx context.Context, email string) ([]models.BookingRecord, error)
	GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type BookingsHandler struct {
	Bookings BookingLookup
	Wizard   booking.WizardService
}

func NewBookingsHandler(bookings BookingLookup, wizard booking.WizardService) *BookingsHandler {
	return &BookingsHandler{Bookings: bookings, Wizard: wizard}
}

// lookupEmail takes ?email=, else the email remembered on ?sessionId=.
func (h *BookingsHandler) lookupEmail(c *gin.Context) (string, bool) {
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		return email, true
	}
	if sessionID := c.Query("sessionId"); sessionID != "" {
		email, err := h.Wizard.SessionEmail(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, err)
			return "", false
		}
		if email != "" {
			return email, true
		}
	}
	utils.JSONError(c, http.StatusBadRequest, "Email is required to look up bookings", "email")
	return "", false
}

func (h *BookingsHandler) ListBookings(c *gin.Context) {
	h.list(c, h.Bookings.GetBookings)
}

func (h *BookingsHandler) ListPendingBookings(c *gin.Context) {
	h.list(c, h.Bookings.GetPendingBookings)
}

func (h *BookingsHandler) list(c *gin.Context, fetch func(context.Context, string) ([]models.BookingRecord, error)) {
	email, ok := h.lookupEmail(c)
	if !ok {
		return
	}
	bookings, err := fetch(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "data": bookings})
}

func (h *BookingsHandler) GetBooking(c *gin.Context) {
	record, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *BookingsHandler) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if err := h.Bookings.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Booking deleted", zap.String("bookingID", bookingID))
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully!"})
}
