package rest

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthController_Echo(t *testing.T) {
	r, j, _ := newEngine(t)
	NewAuthController(r, j)

	rr := doReq(t, r, http.MethodGet, RouteAuthMe, nil, bearer(t, "admin", "offline_access"))
	require.Equal(t, http.StatusOK, rr.Code)
	me := decode(t, rr)
	assert.Equal(t, "kc-123", me["userId"])
	assert.Equal(t, "jperez", me["username"])
	assert.Equal(t, "jperez@example.com", me["email"])
	assert.Equal(t, "José", me["firstName"])
	assert.Equal(t, "Pérez", me["lastName"])
	assert.Equal(t, map[string]any{"roles": []any{"admin", "offline_access"}}, me["roles"])

	tests := []struct {
		path string
		want string
	}{
		{RouteAuthUserID, "kc-123"},
		{RouteAuthUsername, "jperez"},
		{RouteAuthEmail, "jperez@example.com"},
	}
	for _, tt := range tests {
		rr := doReq(t, r, http.MethodGet, tt.path, nil, bearer(t))
		require.Equal(t, http.StatusOK, rr.Code, tt.path)
		assert.Equal(t, tt.want, rr.Body.String())
	}

	rr = doReq(t, r, http.MethodGet, RouteAuthMe, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHealthController(t *testing.T) {
	r, j, _ := newEngine(t)
	hc := NewHealthController(r, "vg-ms-user", j)
	hc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	rr := doReq(t, r, http.MethodGet, RouteHealth, nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "vg-ms-user", body["service"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body["timestamp"])

	assert.Equal(t, http.StatusUnauthorized, doReq(t, r, http.MethodGet, RouteHealthSecure, nil, nil).Code)

	rr = doReq(t, r, http.MethodGet, RouteHealthSecure, nil, bearer(t))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Endpoint seguro - usuario autenticado", decode(t, rr)["message"])
}
