package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/trafficworks/equipment-service/internal/user/domain"
	"github.com/trafficworks/equipment-service/pkg/auth"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// UserIDFromContext returns the authenticated user's id, if any
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

// RoleFromContext returns the authenticated user's role, if any
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(RoleKey).(domain.Role)
	return role, ok
}

// AuthMiddleware validates the JWT bearer token and stores the caller's
// identity in the request context
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, domain.Role(claims.Role))

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// ManageInventoryMiddleware allows only roles permitted to manage inventory
func ManageInventoryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		if !ok || !domain.CanManageInventory(role) {
			respondError(w, http.StatusForbidden, "Inventory management access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CheckoutEquipmentMiddleware allows only roles permitted to check equipment
// in and out
func CheckoutEquipmentMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		if !ok || !domain.CanCheckoutEquipment(role) {
			respondError(w, http.StatusForbidden, "Equipment checkout access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
