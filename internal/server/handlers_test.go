package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation paths that reject before touching the database.

func postJSON(router http.Handler, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateVisitRequiresClientAndDate(t *testing.T) {
	clients, orders := reminderFixtures()
	router := testRouter(t, clients, orders, &stubPrefRepo{})

	w := postJSON(router, "/api/visits", `{"phone": "9876543210"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing client or date")

	w = postJSON(router, "/api/visits", `{"client": "  ", "date": "2024-06-01T10:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRequiresFields(t *testing.T) {
	clients, orders := reminderFixtures()
	router := testRouter(t, clients, orders, &stubPrefRepo{})

	w := postJSON(router, "/api/users", `{"name": "Asha"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing fields")
}

func TestCreateOrderValidation(t *testing.T) {
	clients, orders := reminderFixtures()
	router := testRouter(t, clients, orders, &stubPrefRepo{})

	w := postJSON(router, "/api/orders", `{"order_date": "2024-06-01T10:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing client")

	w = postJSON(router, "/api/orders",
		`{"client": "Raj", "order_date": "2024-06-01T10:00:00Z", "items": [{"kind": "product", "qty": 1}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product item")
}

func TestCreateClientValidation(t *testing.T) {
	clients, orders := reminderFixtures()
	router := testRouter(t, clients, orders, &stubPrefRepo{})

	w := postJSON(router, "/api/clients", `{"phone": "9876543210"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing name")
}

func TestHealth(t *testing.T) {
	clients, orders := reminderFixtures()
	router := testRouter(t, clients, orders, &stubPrefRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
