package account

import (
	"context"
	"encoding/json"
	"strings"

	"darimaids/models"

	"go.uber.org/zap"
)

// Backend is the slice of the REST backend that handles accounts.
type Backend interface {
	CreateCustomer(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error)
	CreateCleaner(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error)
	VerifyOTP(ctx context.Context, otp string) error
	ViewProfile(ctx context.Context, token string) (json.RawMessage, error)
}

// Service validates account forms locally before relaying them.
type Service struct {
	backend Backend
	logger  *zap.Logger
}

func NewService(backend Backend, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: backend, logger: logger}
}

// SignupCustomer registers a customer. The returned email is the one to
// remember for booking lookups.
func (s *Service) SignupCustomer(ctx context.Context, req models.SignupRequest) (*models.AuthResult, string, error) {
	return s.signup(ctx, req, s.backend.CreateCustomer, "customer")
}

// SignupWorker registers a cleaner.
func (s *Service) SignupWorker(ctx context.Context, req models.SignupRequest) (*models.AuthResult, string, error) {
	return s.signup(ctx, req, s.backend.CreateCleaner, "cleaner")
}

func (s *Service) signup(
	ctx context.Context,
	req models.SignupRequest,
	create func(context.Context, models.SignupRequest) (*models.AuthResult, error),
	role string,
) (*models.AuthResult, string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	result, err := create(ctx, req)
	if err != nil {
		s.logger.Warn("Signup rejected", zap.String("role", role), zap.Error(err))
		return nil, "", err
	}
	s.logger.Info("Account created", zap.String("role", role))
	return result, emailOf(result, req.Email), nil
}

func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	result, err := s.backend.Login(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return result, emailOf(result, req.Email), nil
}

// VerifyEmail confirms a signup with the emailed code.
func (s *Service) VerifyEmail(ctx context.Context, otp string) error {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return models.NewValidationError("verification code is required", "otp")
	}
	return s.backend.VerifyOTP(ctx, otp)
}

func (s *Service) Profile(ctx context.Context, token string) (json.RawMessage, error) {
	return s.backend.ViewProfile(ctx, token)
}

func emailOf(result *models.AuthResult, fallback string) string {
	if result != nil {
		if e := result.Email(); e != "" {
			return e
		}
	}
	return fallback
}
