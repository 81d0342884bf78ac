package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
	"github.com/trafficworks/equipment-service/internal/equipment/usecase/command"
	"github.com/trafficworks/equipment-service/internal/equipment/usecase/query"
	userhttp "github.com/trafficworks/equipment-service/internal/user/delivery/http"
	"github.com/trafficworks/equipment-service/kafka"
	"github.com/trafficworks/equipment-service/pkg/logger"
)

// EquipmentHandler handles HTTP requests for the inventory and its
// availability ledger
type EquipmentHandler struct {
	// Command handlers
	createItemHandler        *command.CreateItemHandler
	updateItemHandler        *command.UpdateItemHandler
	deleteItemHandler        *command.DeleteItemHandler
	checkoutHandler          *command.CheckoutEquipmentHandler
	checkinHandler           *command.CheckinEquipmentHandler
	deleteCheckoutHandler    *command.DeleteCheckoutHandler
	createCategoryHandler    *command.CreateCategoryHandler
	updateCategoryHandler    *command.UpdateCategoryHandler
	deleteCategoryHandler    *command.DeleteCategoryHandler
	createLocationHandler    *command.CreateLocationHandler
	updateLocationHandler    *command.UpdateLocationHandler
	deleteLocationHandler    *command.DeleteLocationHandler
	createMaintenanceHandler *command.CreateMaintenanceHandler
	updateMaintenanceHandler *command.UpdateMaintenanceHandler

	// Query handlers
	getItemHandler         *query.GetItemHandler
	listItemsHandler       *query.ListItemsHandler
	listCategoriesHandler  *query.ListCategoriesHandler
	listLocationsHandler   *query.ListLocationsHandler
	getCheckoutHandler     *query.GetCheckoutHandler
	listCheckoutsHandler   *query.ListCheckoutsHandler
	listMaintenanceHandler *query.ListMaintenanceHandler

	kafkaPublisher *kafka.Publisher
	redisClient    *redis.Client
	cacheConfig    CacheConfig
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// CommandHandlers holds all equipment command handlers
type CommandHandlers struct {
	CreateItemHandler        *command.CreateItemHandler
	UpdateItemHandler        *command.UpdateItemHandler
	DeleteItemHandler        *command.DeleteItemHandler
	CheckoutHandler          *command.CheckoutEquipmentHandler
	CheckinHandler           *command.CheckinEquipmentHandler
	DeleteCheckoutHandler    *command.DeleteCheckoutHandler
	CreateCategoryHandler    *command.CreateCategoryHandler
	UpdateCategoryHandler    *command.UpdateCategoryHandler
	DeleteCategoryHandler    *command.DeleteCategoryHandler
	CreateLocationHandler    *command.CreateLocationHandler
	UpdateLocationHandler    *command.UpdateLocationHandler
	DeleteLocationHandler    *command.DeleteLocationHandler
	CreateMaintenanceHandler *command.CreateMaintenanceHandler
	UpdateMaintenanceHandler *command.UpdateMaintenanceHandler
}

// QueryHandlers holds all equipment query handlers
type QueryHandlers struct {
	GetItemHandler         *query.GetItemHandler
	ListItemsHandler       *query.ListItemsHandler
	ListCategoriesHandler  *query.ListCategoriesHandler
	ListLocationsHandler   *query.ListLocationsHandler
	GetCheckoutHandler     *query.GetCheckoutHandler
	ListCheckoutsHandler   *query.ListCheckoutsHandler
	ListMaintenanceHandler *query.ListMaintenanceHandler
}

// NewEquipmentHandlerWithDI creates an equipment handler from pre-built
// handler sets. kafkaPublisher and redisClient may be nil; events and
// caching are then skipped.
func NewEquipmentHandlerWithDI(commands *CommandHandlers, queries *QueryHandlers, kafkaPublisher *kafka.Publisher, redisClient *redis.Client) *EquipmentHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "equipment_requests_total",
			Help: "Total number of requests to the equipment endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "equipment_request_duration_seconds",
			Help:    "Duration of equipment endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &EquipmentHandler{
		createItemHandler:        commands.CreateItemHandler,
		updateItemHandler:        commands.UpdateItemHandler,
		deleteItemHandler:        commands.DeleteItemHandler,
		checkoutHandler:          commands.CheckoutHandler,
		checkinHandler:           commands.CheckinHandler,
		deleteCheckoutHandler:    commands.DeleteCheckoutHandler,
		createCategoryHandler:    commands.CreateCategoryHandler,
		updateCategoryHandler:    commands.UpdateCategoryHandler,
		deleteCategoryHandler:    commands.DeleteCategoryHandler,
		createLocationHandler:    commands.CreateLocationHandler,
		updateLocationHandler:    commands.UpdateLocationHandler,
		deleteLocationHandler:    commands.DeleteLocationHandler,
		createMaintenanceHandler: commands.CreateMaintenanceHandler,
		updateMaintenanceHandler: commands.UpdateMaintenanceHandler,
		getItemHandler:           queries.GetItemHandler,
		listItemsHandler:         queries.ListItemsHandler,
		listCategoriesHandler:    queries.ListCategoriesHandler,
		listLocationsHandler:     queries.ListLocationsHandler,
		getCheckoutHandler:       queries.GetCheckoutHandler,
		listCheckoutsHandler:     queries.ListCheckoutsHandler,
		listMaintenanceHandler:   queries.ListMaintenanceHandler,
		kafkaPublisher:           kafkaPublisher,
		redisClient:              redisClient,
		cacheConfig:              DefaultCacheConfig(),
		requestCounter:           requestCounter,
		requestLatency:           requestLatency,
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
func (h *EquipmentHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateItem handles POST /equipment
func (h *EquipmentHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID   string  `json:"category_id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Quantity     int     `json:"quantity"`
		Condition    string  `json:"condition"`
		LocationID   string  `json:"location_id"`
		Cost         float64 `json:"cost"`
		SerialNumber string  `json:"serial_number"`
		Notes        string  `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateItemCommand{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Quantity:     req.Quantity,
		Condition:    domain.Condition(req.Condition),
		LocationID:   req.LocationID,
		Cost:         req.Cost,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
	}

	item, err := h.createItemHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusCreated, item)
}

// GetItem handles GET /equipment/{id}
func (h *EquipmentHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	item, err := h.getItemHandler.Handle(r.Context(), query.GetItemQuery{ID: vars["id"]})
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusNotFound), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// ListItems handles GET /equipment
func (h *EquipmentHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := query.ListItemsQuery{
		CategoryID: r.URL.Query().Get("category_id"),
		LocationID: r.URL.Query().Get("location_id"),
		Condition:  r.URL.Query().Get("condition"),
		Search:     r.URL.Query().Get("search"),
	}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listItemsHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// UpdateItem handles PUT /equipment/{id}
func (h *EquipmentHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		Quantity     *int     `json:"quantity"`
		Condition    *string  `json:"condition"`
		LocationID   *string  `json:"location_id"`
		Cost         *float64 `json:"cost"`
		SerialNumber *string  `json:"serial_number"`
		Notes        *string  `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateItemCommand{
		ID:           vars["id"],
		Name:         req.Name,
		Description:  req.Description,
		Quantity:     req.Quantity,
		LocationID:   req.LocationID,
		Cost:         req.Cost,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
	}
	if req.Condition != nil {
		cond := domain.Condition(*req.Condition)
		cmd.Condition = &cond
	}

	item, err := h.updateItemHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /equipment/{id}
func (h *EquipmentHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteItemHandler.Handle(r.Context(), command.DeleteItemCommand{ID: vars["id"]}); err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Equipment item deleted"})
}

// Checkout handles POST /equipment/{id}/checkout
func (h *EquipmentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Quantity              int    `json:"quantity"`
		ExpectedReturnDate    string `json:"expected_return_date"`
		DestinationLocationID string `json:"destination_location_id"`
		Notes                 string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CheckoutEquipmentCommand{
		EquipmentID:           vars["id"],
		Quantity:              req.Quantity,
		ExpectedReturnDate:    req.ExpectedReturnDate,
		DestinationLocationID: req.DestinationLocationID,
		Notes:                 req.Notes,
		UserID:                userID,
	}

	checkout, err := h.checkoutHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	// Publish event to Kafka; failures never interrupt the checkout
	if h.kafkaPublisher != nil {
		equipmentName := ""
		if item, ierr := h.getItemHandler.Handle(r.Context(), query.GetItemQuery{ID: checkout.EquipmentID}); ierr == nil {
			equipmentName = item.Name
		}
		event := kafka.EquipmentCheckedOutEvent{
			CheckoutID:         checkout.ID,
			EquipmentID:        checkout.EquipmentID,
			EquipmentName:      equipmentName,
			Quantity:           checkout.Quantity,
			CheckedOutBy:       checkout.CheckedOutBy,
			ExpectedReturnDate: req.ExpectedReturnDate,
		}
		if err := h.kafkaPublisher.PublishEquipmentCheckedOut(r.Context(), event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("checkout_id", checkout.ID).
				Msg("Failed to publish checkout event")
		}
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusCreated, checkout)
}

// CheckIn handles POST /checkouts/{id}/checkin
func (h *EquipmentHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	// Body is optional on check-in
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	cmd := command.CheckinEquipmentCommand{
		CheckoutID: vars["id"],
		Notes:      req.Notes,
		UserID:     userID,
	}

	checkout, err := h.checkinHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	if h.kafkaPublisher != nil {
		event := kafka.EquipmentCheckedInEvent{
			CheckoutID:  checkout.ID,
			EquipmentID: checkout.EquipmentID,
			Quantity:    checkout.Quantity,
			CheckedInBy: userID,
		}
		if err := h.kafkaPublisher.PublishEquipmentCheckedIn(r.Context(), event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("checkout_id", checkout.ID).
				Msg("Failed to publish check-in event")
		}
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, checkout)
}

// GetCheckout handles GET /checkouts/{id}
func (h *EquipmentHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	checkout, err := h.getCheckoutHandler.Handle(r.Context(), query.GetCheckoutQuery{ID: vars["id"]})
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusNotFound), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, checkout)
}

// ListCheckouts handles GET /checkouts
func (h *EquipmentHandler) ListCheckouts(w http.ResponseWriter, r *http.Request) {
	q := query.ListCheckoutsQuery{
		EquipmentID:  r.URL.Query().Get("equipment_id"),
		CheckedOutBy: r.URL.Query().Get("checked_out_by"),
		Status:       r.URL.Query().Get("status"),
	}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	checkouts, err := h.listCheckoutsHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"checkouts": checkouts,
		"count":     len(checkouts),
	})
}

// DeleteCheckout handles DELETE /checkouts/{id}
func (h *EquipmentHandler) DeleteCheckout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteCheckoutHandler.Handle(r.Context(), command.DeleteCheckoutCommand{ID: vars["id"]}); err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Checkout record deleted"})
}

// CreateCategory handles POST /categories
func (h *EquipmentHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.createCategoryHandler.Handle(r.Context(), command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusCreated, category)
}

// ListCategories handles GET /categories
func (h *EquipmentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategoriesHandler.Handle(r.Context(), query.ListCategoriesQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

// UpdateCategory handles PUT /categories/{id}
func (h *EquipmentHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.updateCategoryHandler.Handle(r.Context(), command.UpdateCategoryCommand{
		ID:          vars["id"],
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/{id}
func (h *EquipmentHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteCategoryHandler.Handle(r.Context(), command.DeleteCategoryCommand{ID: vars["id"]}); err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

// CreateLocation handles POST /locations
func (h *EquipmentHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Notes   string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	location, err := h.createLocationHandler.Handle(r.Context(), command.CreateLocationCommand{
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusCreated, location)
}

// ListLocations handles GET /locations
func (h *EquipmentHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.listLocationsHandler.Handle(r.Context(), query.ListLocationsQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// UpdateLocation handles PUT /locations/{id}
func (h *EquipmentHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Notes   *string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	location, err := h.updateLocationHandler.Handle(r.Context(), command.UpdateLocationCommand{
		ID:      vars["id"],
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/{id}
func (h *EquipmentHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteLocationHandler.Handle(r.Context(), command.DeleteLocationCommand{ID: vars["id"]}); err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.invalidateListCaches()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Location deleted"})
}

// CreateMaintenance handles POST /equipment/{id}/maintenance
func (h *EquipmentHandler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Description string  `json:"description"`
		Cost        float64 `json:"cost"`
		Notes       string  `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.createMaintenanceHandler.Handle(r.Context(), command.CreateMaintenanceCommand{
		EquipmentID: vars["id"],
		ReportedBy:  userID,
		Description: req.Description,
		Cost:        req.Cost,
		Notes:       req.Notes,
	})
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, record)
}

// ListMaintenance handles GET /equipment/{id}/maintenance
func (h *EquipmentHandler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.ListMaintenanceQuery{EquipmentID: vars["id"]}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := h.listMaintenanceHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"maintenance": records,
		"count":       len(records),
	})
}

// UpdateMaintenance handles PUT /maintenance/{id}
func (h *EquipmentHandler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Description *string  `json:"description"`
		Status      *string  `json:"status"`
		Cost        *float64 `json:"cost"`
		Notes       *string  `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateMaintenanceCommand{
		ID:          vars["id"],
		Description: req.Description,
		Cost:        req.Cost,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := domain.MaintenanceStatus(*req.Status)
		cmd.Status = &status
	}

	record, err := h.updateMaintenanceHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, h.statusForError(err, http.StatusBadRequest), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, record)
}

// RegisterRoutes registers equipment routes. Reads need authentication,
// inventory writes need the manage capability, and the checkout workflow
// needs the checkout capability.
func (h *EquipmentHandler) RegisterRoutes(router *mux.Router) {
	read := func(endpoint string, next http.HandlerFunc) http.HandlerFunc {
		return h.metricsMiddleware(endpoint, userhttp.AuthMiddleware(CacheMiddleware(h.redisClient, h.cacheConfig, next)))
	}
	manage := func(endpoint string, next http.HandlerFunc) http.HandlerFunc {
		return h.metricsMiddleware(endpoint, userhttp.ManageInventoryMiddleware(next))
	}
	checkout := func(endpoint string, next http.HandlerFunc) http.HandlerFunc {
		return h.metricsMiddleware(endpoint, userhttp.CheckoutEquipmentMiddleware(next))
	}

	// Inventory
	router.HandleFunc("/equipment", read("/equipment", h.ListItems)).Methods("GET")
	router.HandleFunc("/equipment", manage("/equipment", h.CreateItem)).Methods("POST")
	router.HandleFunc("/equipment/{id}", read("/equipment/{id}", h.GetItem)).Methods("GET")
	router.HandleFunc("/equipment/{id}", manage("/equipment/{id}", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/equipment/{id}", manage("/equipment/{id}", h.DeleteItem)).Methods("DELETE")

	// Checkout workflow
	router.HandleFunc("/equipment/{id}/checkout", checkout("/equipment/{id}/checkout", h.Checkout)).Methods("POST")
	router.HandleFunc("/checkouts", read("/checkouts", h.ListCheckouts)).Methods("GET")
	router.HandleFunc("/checkouts/{id}", read("/checkouts/{id}", h.GetCheckout)).Methods("GET")
	router.HandleFunc("/checkouts/{id}/checkin", checkout("/checkouts/{id}/checkin", h.CheckIn)).Methods("POST")
	router.HandleFunc("/checkouts/{id}", manage("/checkouts/{id}", h.DeleteCheckout)).Methods("DELETE")

	// Categories
	router.HandleFunc("/categories", read("/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/categories", manage("/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/categories/{id}", manage("/categories/{id}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/categories/{id}", manage("/categories/{id}", h.DeleteCategory)).Methods("DELETE")

	// Locations
	router.HandleFunc("/locations", read("/locations", h.ListLocations)).Methods("GET")
	router.HandleFunc("/locations", manage("/locations", h.CreateLocation)).Methods("POST")
	router.HandleFunc("/locations/{id}", manage("/locations/{id}", h.UpdateLocation)).Methods("PUT")
	router.HandleFunc("/locations/{id}", manage("/locations/{id}", h.DeleteLocation)).Methods("DELETE")

	// Maintenance; any authenticated user can report a problem
	router.HandleFunc("/equipment/{id}/maintenance", h.metricsMiddleware("/equipment/{id}/maintenance", userhttp.AuthMiddleware(h.CreateMaintenance))).Methods("POST")
	router.HandleFunc("/equipment/{id}/maintenance", read("/equipment/{id}/maintenance", h.ListMaintenance)).Methods("GET")
	router.HandleFunc("/maintenance/{id}", manage("/maintenance/{id}", h.UpdateMaintenance)).Methods("PUT")
}

// statusForError maps ledger errors to HTTP status codes
func (h *EquipmentHandler) statusForError(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return http.StatusConflict
	}
	return fallback
}

// invalidateListCaches drops cached GET responses after a write
func (h *EquipmentHandler) invalidateListCaches() {
	if h.redisClient == nil {
		return
	}
	if err := InvalidateCache(h.redisClient, "cache:*"); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to invalidate cache")
	}
}

func (h *EquipmentHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *EquipmentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
