package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"darimaids/handlers"
	"darimaids/models"
	"darimaids/services/account"
	"darimaids/services/backend"
	"darimaids/services/booking"
	"darimaids/services/catalog"
	"darimaids/services/payment"
	"darimaids/services/worker"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBackend records booking submissions and serves canned answers.
type fakeBackend struct {
	mu          sync.Mutex
	submissions []models.SubmissionPayload
	createCode  int
	createBody  map[string]interface{}
	bookings    map[string][]map[string]interface{}
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("/api/v1/booking/createBookingPayment", func(w http.ResponseWriter, r *http.Request) {
		var p models.SubmissionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		f.mu.Lock()
		f.submissions = append(f.submissions, p)
		code, body := f.createCode, f.createBody
		f.mu.Unlock()
		write(w, code, body)
	})
	mux.HandleFunc("/api/v1/booking/getBookings", func(w http.ResponseWriter, r *http.Request) {
		list, ok := f.bookings[r.URL.Query().Get("email")]
		if !ok {
			write(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "No bookings found"})
			return
		}
		write(w, http.StatusOK, map[string]interface{}{"success": true, "data": list})
	})
	mux.HandleFunc("/api/v1/catalog/displayAllCatalogs", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"count":   1,
			"catalogs": []map[string]interface{}{{
				"serviceName": "Standard Cleaning",
				"prices":      []string{"Studio = $130"},
			}},
		})
	})
	mux.HandleFunc("/api/v1/auth/createCustomer", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"token": "tok", "user": map[string]string{"email": "ana@example.com"}},
		})
	})
	mux.HandleFunc("/api/v1/cleaner/getAllAssignedBookings", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "), "token is forwarded")
		write(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"_id": "a1", "bookingId": "b1", "isAccepted": true},
			},
		})
	})
	mux.HandleFunc("/api/v1/bank/getBank", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "No bank account"})
	})
	mux.HandleFunc("/api/v1/bank/createBank", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]interface{}{"success": false, "message": "Invalid bank details"})
	})
	return mux
}

func newTestRouter(t *testing.T, fb *fakeBackend) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(fb.handler(t))
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, 2*time.Second, nil)
	wizard := booking.NewWizardService(booking.NewMemoryStore(time.Hour), client, time.Minute, nil)
	payments := payment.NewCheckoutServiceWithGetter(true, func(id string, _ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{ID: id, PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid, AmountTotal: 25000}, nil
	}, nil)

	hb := handlers.NewHandlerBundle(
		handlers.NewWizardHandler(wizard, payments),
		handlers.NewCatalogHandler(catalog.NewService(client, catalog.NewMemoryCache(), time.Minute, nil)),
		handlers.NewBookingsHandler(client, wizard),
		handlers.NewAuthHandler(account.NewService(client, nil), wizard),
		handlers.NewWorkerHandler(worker.NewService(client, nil)),
		"",
	)

	r := gin.New()
	RegisterRoutes(r, hb, []string{"*"})
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func startSession(t *testing.T, r http.Handler) string {
	t.Helper()
	w, body := do(t, r, http.MethodPost, "/api/wizard/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return body["sessionId"].(string)
}

func fillDraft(t *testing.T, r http.Handler, id string) {
	t.Helper()
	for _, f := range [][2]string{
		{"serviceType", "move-in-out"},
		{"cleaningType", "studio"},
		{"reoccurrence", "one-time"},
		{"address", "12 Palm Ave"},
		{"city", "Tampa"},
		{"zipCode", "33602"},
		{"state", "FL"},
		{"date", "2026-04-02"},
		{"time", "10:00 AM"},
	} {
		w, _ := do(t, r, http.MethodPatch, "/api/wizard/session/"+id+"/field", map[string]string{"field": f[0], "value": f[1]})
		require.Equal(t, http.StatusOK, w.Code, f[0])
	}
	w, _ := do(t, r, http.MethodPut, "/api/wizard/session/"+id+"/contact", models.ContactDetails{
		FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com", Phone: "555-0100",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, body := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestWizardOptions(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, body := do(t, r, http.MethodGet, "/api/wizard/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["addOns"], len(models.AddOns))
}

func TestWizardPricingFlow(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	id := startSession(t, r)
	fillDraft(t, r, id)

	w, body := do(t, r, http.MethodPut, "/api/wizard/session/"+id+"/addons", map[string]interface{}{"name": "Laundry", "included": true})
	require.Equal(t, http.StatusOK, w.Code)
	pricing := body["pricing"].(map[string]interface{})
	assert.Equal(t, 250.0, pricing["basePrice"])
	assert.Equal(t, 25.0, pricing["addonsPrice"])
	assert.Equal(t, 275.0, pricing["totalPrice"])
	assert.Equal(t, "$275.00", body["display"].(map[string]interface{})["totalPrice"])

	w, _ = do(t, r, http.MethodPatch, "/api/wizard/session/"+id+"/field", map[string]string{"field": "totalPrice", "value": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPut, "/api/wizard/session/"+id+"/addons", map[string]interface{}{"name": "Pool", "included": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, r, http.MethodPost, "/api/wizard/session/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, body["pricing"].(map[string]interface{})["totalPrice"])
}

func TestWizardUnknownSession(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, body := do(t, r, http.MethodGet, "/api/wizard/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, body["message"])
}

func TestSubmitCheckout(t *testing.T) {
	fb := &fakeBackend{createCode: http.StatusCreated, createBody: map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"checkoutUrl": "https://checkout.example/cs_1", "bookingId": "b1"},
	}}
	r := newTestRouter(t, fb)
	id := startSession(t, r)
	fillDraft(t, r, id)

	w, body := do(t, r, http.MethodPost, "/api/wizard/session/"+id+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "checkout", body["outcome"])
	assert.Equal(t, "https://checkout.example/cs_1", body["checkoutUrl"])

	require.Len(t, fb.submissions, 1)
	p := fb.submissions[0]
	assert.Equal(t, "studio", p.Services)
	assert.Equal(t, "250", p.Charge)
	assert.Equal(t, "none", p.Addon)
	assert.Equal(t, "one-time", p.Frequency)
	assert.Equal(t, "1", p.Cleaners)
	assert.Equal(t, "Ana Diaz", p.FullName)
}

func TestSubmitValidationNeverReachesBackend(t *testing.T) {
	fb := &fakeBackend{}
	r := newTestRouter(t, fb)
	id := startSession(t, r)

	w, body := do(t, r, http.MethodPost, "/api/wizard/session/"+id+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["details"], "serviceType")
	assert.Empty(t, fb.submissions)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	fb := &fakeBackend{createCode: http.StatusBadRequest, createBody: map[string]interface{}{"success": false, "message": "Date is in the past"}}
	r := newTestRouter(t, fb)
	id := startSession(t, r)
	fillDraft(t, r, id)

	w, body := do(t, r, http.MethodPost, "/api/wizard/session/"+id+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "failed", body["outcome"])
	assert.Equal(t, "Date is in the past", body["message"])

	w, body = do(t, r, http.MethodGet, "/api/wizard/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "move-in-out", body["draft"].(map[string]interface{})["serviceType"])
}

func TestSubmitIncomplete(t *testing.T) {
	fb := &fakeBackend{createCode: http.StatusOK, createBody: map[string]interface{}{"success": true, "data": map[string]interface{}{"bookingId": "b7"}}}
	r := newTestRouter(t, fb)
	id := startSession(t, r)
	fillDraft(t, r, id)

	w, body := do(t, r, http.MethodPost, "/api/wizard/session/"+id+"/submit", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "incomplete", body["outcome"])
}

func TestCancelSession(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	id := startSession(t, r)

	w, _ := do(t, r, http.MethodDelete, "/api/wizard/session/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/wizard/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutStatus(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, body := do(t, r, http.MethodGet, "/api/wizard/checkout/cs_test_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["paid"])
	assert.Equal(t, 250.0, body["amountTotal"])

	w, _ = do(t, r, http.MethodGet, "/api/wizard/checkout/pi_1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, body := do(t, r, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := body["catalogs"].([]interface{})
	require.Len(t, items, 1)
	prices := items[0].(map[string]interface{})["priceList"].([]interface{})
	assert.Equal(t, map[string]interface{}{"label": "Studio", "price": "$130"}, prices[0])
}

func TestBookingsBySessionEmail(t *testing.T) {
	fb := &fakeBackend{bookings: map[string][]map[string]interface{}{
		"ana@example.com": {{"_id": "b1", "serviceType": "deep-cleaning"}},
	}}
	r := newTestRouter(t, fb)
	id := startSession(t, r)

	w, _ := do(t, r, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "no email and no session")

	w, body := do(t, r, http.MethodPost, "/api/auth/signup", map[string]string{
		"fullName": "Ana Diaz", "email": "ana@example.com", "phoneNumber": "555-0100",
		"password": "pw", "address": "12 Palm Ave", "province": "FL", "zipCode": "33602",
		"sessionId": id,
	})
	require.Equal(t, http.StatusCreated, w.Code, body)

	w, body = do(t, r, http.MethodGet, "/api/bookings?sessionId="+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, body["count"])

	w, body = do(t, r, http.MethodGet, "/api/bookings?email=nobody@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code, "404 from the backend is an empty list")
	assert.Equal(t, 0.0, body["count"])
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, body := do(t, r, http.MethodPost, "/api/auth/signup", map[string]string{"email": "ana@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["details"], "fullName")
}

func TestWorkerRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	w, _ := do(t, r, http.MethodGet, "/api/worker/assignments", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/bank", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkerAssignmentsAndBank(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "cleaner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend"))
	require.NoError(t, err)

	w, body := do(t, r, http.MethodGet, "/api/worker/assignments", nil, "Authorization", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	list := body["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "accepted", list[0].(map[string]interface{})["status"])

	w, body = do(t, r, http.MethodGet, "/api/bank", nil, "Authorization", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body["data"])

	w, _ = do(t, r, http.MethodPost, "/api/bank", map[string]string{
		"bankName": "Chase", "accountName": "Ana", "accountNumber": "12ab",
	}, "Authorization", "Bearer "+tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	customer, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "customer"}).SignedString([]byte("backend"))
	w, _ = do(t, r, http.MethodGet, "/api/worker/assignments", nil, "Authorization", "Bearer "+customer)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func workerToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "cleaner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend"))
	require.NoError(t, err)
	return tok
}

func TestBackendRejectionIsNotASuccess(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})

	w, body := do(t, r, http.MethodPost, "/api/bank", map[string]string{
		"bankName": "Chase", "accountName": "Ana", "accountNumber": "0042",
	}, "Authorization", "Bearer "+workerToken(t))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid bank details", body["message"])
}

func TestContactValidation(t *testing.T) {
	r := newTestRouter(t, &fakeBackend{})
	id := startSession(t, r)

	w, body := do(t, r, http.MethodPut, "/api/wizard/session/"+id+"/contact", map[string]string{
		"firstName": "Ana", "email": "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "lastName,phone", body["details"])

	w, body = do(t, r, http.MethodPut, "/api/wizard/session/"+id+"/contact", models.ContactDetails{
		FirstName: "Ana", LastName: "Diaz", Email: "not-an-email", Phone: "555-0100",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid email address", body["message"])
	assert.Equal(t, "email", body["details"])
}

func TestSubmitWithoutDateUsesToday(t *testing.T) {
	fb := &fakeBackend{createCode: http.StatusCreated, createBody: map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"checkoutUrl": "https://checkout.example/cs_1"},
	}}
	r := newTestRouter(t, fb)
	id := startSession(t, r)
	fillDraft(t, r, id)
	w, _ := do(t, r, http.MethodPatch, "/api/wizard/session/"+id+"/field", map[string]string{"field": "date", "value": ""})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/wizard/session/"+id+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, fb.submissions, 1)
	assert.Equal(t, time.Now().Format(models.DateLayout), fb.submissions[0].Date)
}
