package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficworks/equipment-service/internal/user/domain"
	"github.com/trafficworks/equipment-service/pkg/auth"
)

func bearerFor(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := auth.GenerateToken("3f0d9c4e-8c1b-4f6a-9d2e-1a6b7c8d9e0f", "worker", string(role))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInjectsIdentity(t *testing.T) {
	var gotUserID string
	var gotRole domain.Role
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", bearerFor(t, domain.RoleSiteManager))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3f0d9c4e-8c1b-4f6a-9d2e-1a6b7c8d9e0f", gotUserID)
	assert.Equal(t, domain.RoleSiteManager, gotRole)
}

func TestManageInventoryMiddleware(t *testing.T) {
	tests := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleTrafficControlManager, http.StatusOK},
		{domain.RoleFieldSupervisor, http.StatusOK},
		{domain.RoleTrafficWorksiteSupervisor, http.StatusForbidden},
		{domain.RoleTrafficControlPerson, http.StatusForbidden},
	}

	handler := ManageInventoryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest("POST", "/equipment", nil)
			req.Header.Set("Authorization", bearerFor(t, tt.role))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCheckoutEquipmentMiddleware(t *testing.T) {
	tests := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleSiteManager, http.StatusOK},
		{domain.RoleTrafficWorksiteSupervisor, http.StatusOK},
		{domain.RoleTrafficControlPerson, http.StatusForbidden},
	}

	handler := CheckoutEquipmentMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest("POST", "/equipment/abc/checkout", nil)
			req.Header.Set("Authorization", bearerFor(t, tt.role))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
