package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campuspay/internal/repositories"
	"campuspay/internal/routes"
	"campuspay/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	app := fiber.New()
	routes.SetupRoutes(app, repositories.NewMemoryStore(), session.NewMemoryStore(0))
	return &testAPI{t: t, app: app}
}

func (a *testAPI) do(method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.cookie != "" {
		req.Header.Set("Cookie", a.cookie)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)

	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			a.cookie = fmt.Sprintf("%s=%s", c.Name, c.Value)
		}
	}

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func (a *testAPI) signup() map[string]interface{} {
	a.t.Helper()
	resp, body := a.do(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@college.edu",
		"password": "secret1!",
	})
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
	return body
}

func TestSignupFlow(t *testing.T) {
	api := newTestAPI(t)
	body := api.signup()

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ravi@college.edu", user["email"])
	assert.EqualValues(t, 500, user["creditScore"])

	// The hash never crosses the wire.
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "passwordHash")
	assert.NotContains(t, string(raw), "secret1!")

	// A session cookie was set.
	assert.NotEmpty(t, api.cookie)
}

func TestSignupDuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	resp, body := api.do(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Ravi Again",
		"email":    "ravi@college.edu",
		"password": "another1!",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "already registered")
}

func TestSignupValidation(t *testing.T) {
	api := newTestAPI(t)
	resp, _ := api.do(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name":  "No Password",
		"email": "nope@college.edu",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/api/wallets", "/api/card", "/api/transactions", "/api/paylater", "/api/emi"} {
		resp, _ := api.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestWalletListingAndProvisionedBalances(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	resp, body := api.do(http.MethodGet, "/api/wallets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	wallets, ok := body["wallets"].([]interface{})
	require.True(t, ok)
	require.Len(t, wallets, 4)

	balances := map[string]string{}
	for _, w := range wallets {
		wallet := w.(map[string]interface{})
		balances[wallet["type"].(string)] = wallet["balance"].(string)
	}
	assert.Equal(t, "0", balances["cash"])
	assert.Equal(t, "5000", balances["e-atm"])
	assert.Equal(t, "5000", balances["paylater"])
	assert.Equal(t, "0", balances["rewards"])
}

func TestTransactionPostingOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	_, body := api.do(http.MethodGet, "/api/wallets", nil)
	wallets := body["wallets"].([]interface{})
	var eatmID float64
	for _, w := range wallets {
		wallet := w.(map[string]interface{})
		if wallet["type"] == "e-atm" {
			eatmID = wallet["id"].(float64)
		}
	}

	resp, body := api.do(http.MethodPost, "/api/transactions", fiber.Map{
		"walletId": eatmID,
		"amount":   "1250.75",
		"merchant": "Zomato",
		"category": "food",
		"type":     "debit",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	txn := body["transaction"].(map[string]interface{})
	assert.Equal(t, "1250.75", txn["amount"])

	// Overdraft rejected with 400.
	resp, body = api.do(http.MethodPost, "/api/transactions", fiber.Map{
		"walletId": eatmID,
		"amount":   "99999",
		"merchant": "Croma",
		"category": "shopping",
		"type":     "debit",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "insufficient balance")

	// Balance reflects only the successful debit.
	resp, body = api.do(http.MethodGet, fmt.Sprintf("/api/wallets/%.0f", eatmID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	wallet := body["wallet"].(map[string]interface{})
	assert.Equal(t, "3749.25", wallet["balance"])
}

func TestCardIsMaskedOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	resp, body := api.do(http.MethodGet, "/api/card", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	card := body["card"].(map[string]interface{})
	number := card["cardNumber"].(string)
	assert.True(t, strings.HasPrefix(number, "•••• •••• •••• "))

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "cvv")
	assert.NotContains(t, string(raw), "CVV")
}

func TestCardStatusUpdate(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	resp, _ := api.do(http.MethodPatch, "/api/card/status", fiber.Map{"status": "frozen"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := api.do(http.MethodGet, "/api/card", nil)
	card := body["card"].(map[string]interface{})
	assert.Equal(t, "frozen", card["status"])

	resp, _ = api.do(http.MethodPatch, "/api/card/status", fiber.Map{"status": "stolen"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmiConvertOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	resp, body := api.do(http.MethodPost, "/api/emi/convert", fiber.Map{
		"totalAmount":  "10000",
		"interestRate": "15",
		"tenure":       12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	plan := body["plan"].(map[string]interface{})
	assert.Equal(t, "902.58", plan["monthlyEmi"])

	resp, _ = api.do(http.MethodPost, "/api/emi/convert", fiber.Map{
		"totalAmount": "10000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutEndsSession(t *testing.T) {
	api := newTestAPI(t)
	api.signup()

	resp, _ := api.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOwnershipIsolationOverHTTP(t *testing.T) {
	// Two users on one app; B must not see A's wallet.
	app := fiber.New()
	routes.SetupRoutes(app, repositories.NewMemoryStore(), session.NewMemoryStore(0))

	userA := &testAPI{t: t, app: app}
	resp, _ := userA.do(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name": "A", "email": "a@college.edu", "password": "passA1!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := userA.do(http.MethodGet, "/api/wallets", nil)
	walletA := body["wallets"].([]interface{})[0].(map[string]interface{})

	userB := &testAPI{t: t, app: app}
	resp, _ = userB.do(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name": "B", "email": "b@college.edu", "password": "passB1!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = userB.do(http.MethodGet, fmt.Sprintf("/api/wallets/%.0f", walletA["id"].(float64)), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
