package worker

import (
	"context"
	"errors"

	"darimaids/models"

	"go.uber.org/zap"
)

var (
	// ErrAssignmentNotFound is returned for bookings not assigned to the caller.
	ErrAssignmentNotFound = errors.New("booking is not assigned to you")
	// ErrNotAccepted is returned when completing a job that was never accepted.
	ErrNotAccepted = errors.New("only accepted bookings can be marked as completed")
	// ErrNoBankAccount is returned when updating or deleting a missing account.
	ErrNoBankAccount = errors.New("no bank account on file")
)

// Backend is the slice of the REST backend the worker portal uses.
type Backend interface {
	GetAssignedBookings(ctx context.Context, token string) ([]models.Assignment, error)
	GetAssignedBooking(ctx context.Context, token, bookingID string) (*models.BookingRecord, error)
	AcceptOrRejectBooking(ctx context.Context, token, bookingID string) error
	CompleteBooking(ctx context.Context, token, bookingID string) error

	GetBank(ctx context.Context, token string) (*models.BankAccount, error)
	CreateBank(ctx context.Context, token string, in models.BankInput) (*models.BankAccount, error)
	UpdateBank(ctx context.Context, token, bankID string, in models.BankInput) (*models.BankAccount, error)
	DeleteBank(ctx context.Context, token, bankID string) error
}

// AssignmentView is one row of the worker portal.
type AssignmentView struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"bookingId"`
	Booking     models.BookingRecord `json:"booking"`
	Status      string               `json:"status"`
	CanComplete bool                 `json:"canComplete"`
}

// BankView never exposes the full account number.
type BankView struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

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

// Assignments lists the caller's jobs with their derived status.
func (s *Service) Assignments(ctx context.Context, token string) ([]AssignmentView, error) {
	list, err := s.backend.GetAssignedBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	views := make([]AssignmentView, 0, len(list))
	for _, a := range list {
		views = append(views, AssignmentView{
			ID:          a.ID,
			BookingID:   a.Booking.ID,
			Booking:     a.Booking.BookingRecord,
			Status:      a.DisplayStatus(),
			CanComplete: a.CanComplete(),
		})
	}
	return views, nil
}

func (s *Service) Assignment(ctx context.Context, token, bookingID string) (*models.BookingRecord, error) {
	return s.backend.GetAssignedBooking(ctx, token, bookingID)
}

// Respond toggles acceptance of an assigned booking.
func (s *Service) Respond(ctx context.Context, token, bookingID string) error {
	if err := s.backend.AcceptOrRejectBooking(ctx, token, bookingID); err != nil {
		return err
	}
	s.logger.Info("Assignment response recorded", zap.String("bookingID", bookingID))
	return nil
}

// Complete marks an accepted job as done.
func (s *Service) Complete(ctx context.Context, token, bookingID string) error {
	list, err := s.backend.GetAssignedBookings(ctx, token)
	if err != nil {
		return err
	}
	var found *models.Assignment
	for i := range list {
		if list[i].Booking.ID == bookingID {
			found = &list[i]
			break
		}
	}
	if found == nil {
		return ErrAssignmentNotFound
	}
	if !found.CanComplete() {
		return ErrNotAccepted
	}
	if err := s.backend.CompleteBooking(ctx, token, bookingID); err != nil {
		return err
	}
	s.logger.Info("Booking completed", zap.String("bookingID", bookingID))
	return nil
}

// Bank returns the caller's masked account, or nil when there is none.
func (s *Service) Bank(ctx context.Context, token string) (*BankView, error) {
	acct, err := s.backend.GetBank(ctx, token)
	if err != nil || acct == nil {
		return nil, err
	}
	return bankView(acct), nil
}

func (s *Service) CreateBank(ctx context.Context, token string, in models.BankInput) (*BankView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	acct, err := s.backend.CreateBank(ctx, token, in)
	if err != nil {
		return nil, err
	}
	return bankView(acct), nil
}

// UpdateBank edits the account on file; bankID may be empty to mean
// "the caller's account".
func (s *Service) UpdateBank(ctx context.Context, token, bankID string, in models.BankInput) (*BankView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, err := s.resolveBankID(ctx, token, bankID)
	if err != nil {
		return nil, err
	}
	acct, err := s.backend.UpdateBank(ctx, token, id, in)
	if err != nil {
		return nil, err
	}
	return bankView(acct), nil
}

func (s *Service) DeleteBank(ctx context.Context, token, bankID string) error {
	id, err := s.resolveBankID(ctx, token, bankID)
	if err != nil {
		return err
	}
	return s.backend.DeleteBank(ctx, token, id)
}

func (s *Service) resolveBankID(ctx context.Context, token, bankID string) (string, error) {
	if bankID != "" {
		return bankID, nil
	}
	acct, err := s.backend.GetBank(ctx, token)
	if err != nil {
		return "", err
	}
	if acct == nil || acct.ID == "" {
		return "", ErrNoBankAccount
	}
	return acct.ID, nil
}

func bankView(acct *models.BankAccount) *BankView {
	if acct == nil {
		return nil
	}
	return &BankView{
		ID:            acct.ID,
		BankName:      acct.BankName,
		AccountName:   acct.AccountName,
		AccountNumber: acct.MaskedAccountNumber(),
	}
}
