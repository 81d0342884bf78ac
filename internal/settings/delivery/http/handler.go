package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
	"github.com/trafficworks/equipment-service/internal/settings/usecase/command"
	"github.com/trafficworks/equipment-service/internal/settings/usecase/query"
	userhttp "github.com/trafficworks/equipment-service/internal/user/delivery/http"
)

// SettingsHandler handles HTTP requests for the singleton settings row
type SettingsHandler struct {
	getHandler    *query.GetSettingsHandler
	updateHandler *command.UpdateSettingsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSettingsHandler creates a settings handler
func NewSettingsHandler(getHandler *query.GetSettingsHandler, updateHandler *command.UpdateSettingsHandler) *SettingsHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settings_requests_total",
			Help: "Total number of requests to the settings endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "settings_request_duration_seconds",
			Help:    "Duration of settings endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SettingsHandler{
		getHandler:     getHandler,
		updateHandler:  updateHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SettingsHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.getHandler.Handle(r.Context(), query.GetSettingsQuery{})
	if err != nil {
		h.respondError(w, h.statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrganizationName    *string `json:"organization_name"`
		OrganizationAddress *string `json:"organization_address"`
		OrganizationPhone   *string `json:"organization_phone"`
		OrganizationEmail   *string `json:"organization_email"`
		Timezone            *string `json:"timezone"`
		DateFormat          *string `json:"date_format"`
		Currency            *string `json:"currency"`
		LogoURL             *string `json:"logo_url"`
		PrimaryColor        *string `json:"primary_color"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.updateHandler.Handle(r.Context(), command.UpdateSettingsCommand{
		OrganizationName:    req.OrganizationName,
		OrganizationAddress: req.OrganizationAddress,
		OrganizationPhone:   req.OrganizationPhone,
		OrganizationEmail:   req.OrganizationEmail,
		Timezone:            req.Timezone,
		DateFormat:          req.DateFormat,
		Currency:            req.Currency,
		LogoURL:             req.LogoURL,
		PrimaryColor:        req.PrimaryColor,
	})
	if err != nil {
		h.respondError(w, h.statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}

// RegisterRoutes registers settings routes. Reads need authentication,
// updates need the manage capability.
func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/settings", h.metricsMiddleware("/settings", userhttp.AuthMiddleware(h.GetSettings))).Methods("GET")
	router.HandleFunc("/settings", h.metricsMiddleware("/settings", userhttp.ManageInventoryMiddleware(h.UpdateSettings))).Methods("PUT")
}

func (h *SettingsHandler) statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func (h *SettingsHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *SettingsHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
