package handlers

import (
	"context"
	"net/http"

	"darimaids/models"
	"darimaids/services/booking"
	"darimaids/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutLookup reports the state of an external payment.
type CheckoutLookup interface {
	Status(ctx context.Context, checkoutSessionID string) (*payment.CheckoutStatus, error)
}

// WizardHandler serves the booking wizard.
type WizardHandler struct {
	Wizard   booking.WizardService
	Payments CheckoutLookup
}

func NewWizardHandler(wizard booking.WizardService, payments CheckoutLookup) *WizardHandler {
	return &WizardHandler{Wizard: wizard, Payments: payments}
}

// GetOptions returns the fixed option lists the wizard offers.
func (h *WizardHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.GetWizardOptions())
}

func (h *WizardHandler) InitiateSession(c *gin.Context) {
	view, err := h.Wizard.InitiateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	view, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateField sets one draft field: {"field": "...", "value": "..."}.
func (h *WizardHandler) UpdateField(c *gin.Context) {
	var body struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if !bindJSON(c, &body) {
		return
	}
	view, err := h.Wizard.UpdateField(c.Request.Context(), c.Param("sessionID"), body.Field, body.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleAddon: {"name": "Laundry", "included": true}.
func (h *WizardHandler) ToggleAddon(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Included bool   `json:"included"`
	}
	if !bindJSON(c, &body) {
		return
	}
	view, err := h.Wizard.ToggleAddon(c.Request.Context(), c.Param("sessionID"), body.Name, body.Included)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *WizardHandler) SetContact(c *gin.Context) {
	var contact models.ContactDetails
	if !bindJSON(c, &contact) {
		return
	}
	view, err := h.Wizard.SetContact(c.Request.Context(), c.Param("sessionID"), contact)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *WizardHandler) Reset(c *gin.Context) {
	view, err := h.Wizard.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit answers 201 with a checkout link, 202 when the booking exists
// without one and 502 when nothing was created.
func (h *WizardHandler) Submit(c *gin.Context) {
	sessionID := c.Param("sessionID")
	result, err := h.Wizard.Submit(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	switch result.Outcome {
	case models.OutcomeIncomplete:
		status = http.StatusAccepted
	case models.OutcomeFailed:
		status = http.StatusBadGateway
		getLogger(c).Warn("Booking submission failed",
			zap.String("sessionID", sessionID),
			zap.String("message", result.Message),
		)
	}
	c.JSON(status, result)
}

func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Wizard.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}

// CheckoutStatus reports the payment after the redirect back from checkout.
func (h *WizardHandler) CheckoutStatus(c *gin.Context) {
	status, err := h.Payments.Status(c.Request.Context(), c.Param("checkoutSessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
