package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Token verification secret for BearerAuth; empty checks expiry only.
	JWTSecret string

	Health gin.HandlerFunc

	// Wizard endpoints
	GetWizardOptions gin.HandlerFunc
	InitiateSession  gin.HandlerFunc
	GetSession       gin.HandlerFunc
	UpdateField      gin.HandlerFunc
	ToggleAddon      gin.HandlerFunc
	SetContact       gin.HandlerFunc
	ResetSession     gin.HandlerFunc
	SubmitBooking    gin.HandlerFunc
	CancelSession    gin.HandlerFunc
	CheckoutStatus   gin.HandlerFunc

	// Catalog and booking lookups
	ListCatalog         gin.HandlerFunc
	ListBookings        gin.HandlerFunc
	ListPendingBookings gin.HandlerFunc
	GetBooking          gin.HandlerFunc
	DeleteBooking       gin.HandlerFunc

	// Account endpoints
	SignupCustomer gin.HandlerFunc
	SignupWorker   gin.HandlerFunc
	Login          gin.HandlerFunc
	VerifyEmail    gin.HandlerFunc
	Profile        gin.HandlerFunc

	// Worker portal
	ListAssignments     gin.HandlerFunc
	GetAssignment       gin.HandlerFunc
	RespondToAssignment gin.HandlerFunc
	CompleteAssignment  gin.HandlerFunc
	GetBank             gin.HandlerFunc
	CreateBank          gin.HandlerFunc
	UpdateBank          gin.HandlerFunc
	DeleteBank          gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the per-area handlers.
func NewHandlerBundle(
	wizard *WizardHandler,
	catalog *CatalogHandler,
	bookings *BookingsHandler,
	auth *AuthHandler,
	worker *WorkerHandler,
	jwtSecret string,
) *HandlerBundle {
	return &HandlerBundle{
		JWTSecret: jwtSecret,
		Health:    Health,

		GetWizardOptions: wizard.GetOptions,
		InitiateSession:  wizard.InitiateSession,
		GetSession:       wizard.GetSession,
		UpdateField:      wizard.UpdateField,
		ToggleAddon:      wizard.ToggleAddon,
		SetContact:       wizard.SetContact,
		ResetSession:     wizard.Reset,
		SubmitBooking:    wizard.Submit,
		CancelSession:    wizard.CancelSession,
		CheckoutStatus:   wizard.CheckoutStatus,

		ListCatalog:         catalog.ListCatalog,
		ListBookings:        bookings.ListBookings,
		ListPendingBookings: bookings.ListPendingBookings,
		GetBooking:          bookings.GetBooking,
		DeleteBooking:       bookings.DeleteBooking,

		SignupCustomer: auth.SignupCustomer,
		SignupWorker:   auth.SignupWorker,
		Login:          auth.Login,
		VerifyEmail:    auth.VerifyEmail,
		Profile:        auth.Profile,

		ListAssignments:     worker.ListAssignments,
		GetAssignment:       worker.GetAssignment,
		RespondToAssignment: worker.RespondToAssignment,
		CompleteAssignment:  worker.CompleteAssignment,
		GetBank:             worker.GetBank,
		CreateBank:          worker.CreateBank,
		UpdateBank:          worker.UpdateBank,
		DeleteBank:          worker.DeleteBank,
	}
}
