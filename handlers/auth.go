package handlers

import (
	"context"
	"net/http"

	"darimaids/models"
	"darimaids/services/account"
	"darimaids/services/booking"
	"darimaids/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Accounts *account.Service
	Wizard   booking.WizardService
}

func NewAuthHandler(accounts *account.Service, wizard booking.WizardService) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Wizard: wizard}
}

type signupBody struct {
	models.SignupRequest
	SessionID string `json:"sessionId"`
}

func (h *AuthHandler) SignupCustomer(c *gin.Context) {
	h.signup(c, h.Accounts.SignupCustomer)
}

func (h *AuthHandler) SignupWorker(c *gin.Context) {
	h.signup(c, h.Accounts.SignupWorker)
}

func (h *AuthHandler) signup(c *gin.Context, create func(context.Context, models.SignupRequest) (*models.AuthResult, string, error)) {
	var body signupBody
	if !bindJSON(c, &body) {
		return
	}
	result, email, err := create(c.Request.Context(), body.SignupRequest)
	if err != nil {
		respondError(c, err)
		return
	}
	h.remember(c, body.SessionID, email)
	c.JSON(http.StatusCreated, gin.H{"message": "Account created. Check your email for a verification code.", "data": result})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		models.LoginRequest
		SessionID string `json:"sessionId"`
	}
	if !bindJSON(c, &body) {
		return
	}
	result, email, err := h.Accounts.Login(c.Request.Context(), body.LoginRequest)
	if err != nil {
		respondError(c, err)
		return
	}
	h.remember(c, body.SessionID, email)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "data": result})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var body struct {
		OTP string `json:"otp"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := h.Accounts.VerifyEmail(c.Request.Context(), body.OTP); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}

// Profile relays the caller's profile; requires BearerAuth.
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.Accounts.Profile(c.Request.Context(), c.GetString(utils.ContextTokenKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", profile)
}

// remember keys later booking lookups of the wizard session by email.
// Failures are logged only; the account call already succeeded.
func (h *AuthHandler) remember(c *gin.Context, sessionID, email string) {
	if sessionID == "" || email == "" {
		return
	}
	if err := h.Wizard.RememberEmail(c.Request.Context(), sessionID, email); err != nil {
		getLogger(c).Warn("Could not remember email on session",
			zap.String("sessionID", sessionID),
			zap.Error(err),
		)
	}
}
