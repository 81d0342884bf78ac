package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListItems godoc
// @Summary List equipment items
// @Description List equipment items with optional category, location, condition, and search filters
// @Tags Equipment
// @Security BearerAuth
// @Produce json
// @Param category_id query string false "Category UUID"
// @Param location_id query string false "Location UUID"
// @Param condition query string false "Condition (good/fair/damaged/needs_repair/retired)"
// @Param search query string false "Name search"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{items=array,count=int}
// @Failure 401 {object} object{error=string}
// @Router /equipment [get]
func (h *EquipmentHandler) ListItemsDoc() {}

// CreateItem godoc
// @Summary Create equipment item
// @Description Create a new equipment item; available quantity starts equal to total (manage capability)
// @Tags Equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{category_id=string,name=string,quantity=int,condition=string,location_id=string,cost=number,serial_number=string,notes=string} true "Item data"
// @Success 201 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /equipment [post]
func (h *EquipmentHandler) CreateItemDoc() {}

// Checkout godoc
// @Summary Check out equipment
// @Description Atomically decrement availability and open a checkout record (checkout capability)
// @Tags Checkouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Equipment UUID"
// @Param request body object{quantity=int,expected_return_date=string,destination_location_id=string,notes=string} true "Checkout data"
// @Success 201 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string} "Insufficient stock"
// @Router /equipment/{id}/checkout [post]
func (h *EquipmentHandler) CheckoutDoc() {}

// CheckIn godoc
// @Summary Check in equipment
// @Description Close an open checkout and return its quantity to availability (checkout capability)
// @Tags Checkouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Checkout UUID"
// @Param request body object{notes=string} false "Check-in notes"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string} "Already checked in"
// @Router /checkouts/{id}/checkin [post]
func (h *EquipmentHandler) CheckInDoc() {}

// ListCheckouts godoc
// @Summary List checkout records
// @Description List checkout records with optional equipment, user, and open/closed filters
// @Tags Checkouts
// @Security BearerAuth
// @Produce json
// @Param equipment_id query string false "Equipment UUID"
// @Param checked_out_by query string false "User UUID"
// @Param status query string false "open or closed"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{checkouts=array,count=int}
// @Failure 401 {object} object{error=string}
// @Router /checkouts [get]
func (h *EquipmentHandler) ListCheckoutsDoc() {}
