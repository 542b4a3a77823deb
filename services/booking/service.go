package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"darimaids/models"
	"darimaids/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService keeps drafts in a SessionStore and submits them
// through a BookingCreator.
type DefaultWizardService struct {
	Store   SessionStore
	Creator BookingCreator
	Logger  *zap.Logger
	// SubmitTimeout bounds the in-flight marker of a submission.
	SubmitTimeout time.Duration
	Now           func() time.Time
}

// NewWizardService wires a DefaultWizardService.
func NewWizardService(store SessionStore, creator BookingCreator, submitTimeout time.Duration, logger *zap.Logger) *DefaultWizardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultWizardService{
		Store:         store,
		Creator:       creator,
		Logger:        logger,
		SubmitTimeout: submitTimeout,
		Now:           time.Now,
	}
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// InitiateSession creates an empty draft under a fresh session ID.
func (s *DefaultWizardService) InitiateSession(ctx context.Context) (*models.SessionView, error) {
	now := s.now()
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Draft:     models.NewBookingDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("Booking session initiated", zap.String("sessionID", session.SessionID))
	return viewOf(session), nil
}

func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

// UpdateField sets one draft field and reprices the draft.
func (s *DefaultWizardService) UpdateField(ctx context.Context, sessionID, field, value string) (*models.SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		return session.Draft.Update(field, value)
	})
}

// ToggleAddon includes or removes a named add-on. Names outside the
// fixed list are rejected.
func (s *DefaultWizardService) ToggleAddon(ctx context.Context, sessionID, name string, included bool) (*models.SessionView, error) {
	if !models.IsAddOn(name) {
		return nil, &UnknownAddonError{Name: name}
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Draft.ToggleAddon(name, included)
		return nil
	})
}

// SetContact stores the contact details verbatim.
func (s *DefaultWizardService) SetContact(ctx context.Context, sessionID string, contact models.ContactDetails) (*models.SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Contact = contact
		return nil
	})
}

// Reset clears the draft and the last submission result.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Draft.Reset()
		session.LastResult = nil
		return nil
	})
}

func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.Logger.Info("Booking session cancelled", zap.String("sessionID", sessionID))
	return nil
}

// RememberEmail keys later booking lookups of this session.
func (s *DefaultWizardService) RememberEmail(ctx context.Context, sessionID, email string) error {
	_, err := s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Email = strings.TrimSpace(email)
		return nil
	})
	return err
}

func (s *DefaultWizardService) SessionEmail(ctx context.Context, sessionID string) (string, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.Email != "" {
		return session.Email, nil
	}
	return session.Contact.Email, nil
}

// Submit validates the draft, sends it to the backend and interprets the
// answer. Validation problems are returned as errors and nothing is
// sent; backend failures come back as an OutcomeFailed result with the
// draft left untouched. On success the draft and contact are cleared.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if missing := session.Draft.MissingRequired(); len(missing) > 0 {
		return nil, models.NewValidationError("please complete all required booking fields", missing...)
	}
	if err := session.Contact.Validate(); err != nil {
		return nil, err
	}

	acquired, err := s.Store.AcquireSubmit(ctx, sessionID, s.SubmitTimeout)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}
	defer func() {
		if err := s.Store.ReleaseSubmit(context.Background(), sessionID); err != nil {
			s.Logger.Warn("Failed to release submission marker", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	pricing.Compute(session.Draft)
	payload := BuildSubmissionPayload(session.Draft, session.Contact, s.now())

	data, createErr := s.Creator.CreateBooking(ctx, payload)
	result := InterpretCreateResponse(data, createErr)

	// Reload so edits made while the call was in flight are kept.
	latest, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			s.Logger.Warn("Session ended during submission", zap.String("sessionID", sessionID))
			return result, nil
		}
		return nil, err
	}

	switch result.Outcome {
	case models.OutcomeFailed:
		s.Logger.Error("Booking submission failed",
			zap.String("sessionID", sessionID),
			zap.Error(createErr),
		)
	default:
		result.Summary = BuildSummary(payload)
		latest.Draft.Reset()
		latest.Contact = models.ContactDetails{}
		s.Logger.Info("Booking submitted",
			zap.String("sessionID", sessionID),
			zap.String("bookingID", result.BookingID),
			zap.String("outcome", string(result.Outcome)),
		)
	}

	latest.LastResult = result
	latest.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, latest); err != nil {
		return nil, fmt.Errorf("failed to store submission result: %w", err)
	}
	return result, nil
}

func (s *DefaultWizardService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	pricing.Compute(session.Draft)
	session.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

func viewOf(session *models.BookingSession) *models.SessionView {
	breakdown := pricing.Quote(session.Draft)
	return &models.SessionView{
		SessionID:  session.SessionID,
		Draft:      session.Draft,
		Contact:    session.Contact,
		Email:      session.Email,
		Pricing:    breakdown,
		Display:    breakdown.Format(),
		LastResult: session.LastResult,
	}
}

var _ WizardService = (*DefaultWizardService)(nil)
