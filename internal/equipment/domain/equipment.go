package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Condition describes the physical state of an equipment item
type Condition string

const (
	ConditionGood        Condition = "good"
	ConditionFair        Condition = "fair"
	ConditionDamaged     Condition = "damaged"
	ConditionNeedsRepair Condition = "needs_repair"
	ConditionRetired     Condition = "retired"
)

// IsValid reports whether c is a known condition
func (c Condition) IsValid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionDamaged, ConditionNeedsRepair, ConditionRetired:
		return true
	}
	return false
}

// EquipmentCategory groups equipment items (signs, cones, arrow boards, ...)
type EquipmentCategory struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (EquipmentCategory) TableName() string {
	return "equipment_categories"
}

// Location is a yard, depot, or worksite equipment can live at or be sent to
type Location struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Location) TableName() string {
	return "locations"
}

// EquipmentItem is a counted stock line of one kind of equipment.
// QuantityAvailable always equals QuantityTotal minus the summed quantity of
// the item's open checkouts; only the checkout workflow and total-quantity
// edits may move it.
type EquipmentItem struct {
	ID                string         `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID        string         `json:"category_id" gorm:"type:uuid;not null;index"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description,omitempty"`
	QuantityTotal     int            `json:"quantity_total" gorm:"not null;default:0;check:quantity_total >= 0"`
	QuantityAvailable int            `json:"quantity_available" gorm:"not null;default:0;check:quantity_available >= 0"`
	Condition         Condition      `json:"condition" gorm:"type:varchar(16);not null;default:'good'"`
	LocationID        *string        `json:"location_id,omitempty" gorm:"type:uuid;index"`
	Cost              float64        `json:"cost,omitempty"`
	SerialNumber      string         `json:"serial_number,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (EquipmentItem) TableName() string {
	return "equipment_items"
}

// QuantityCheckedOut derives the number of units currently out
func (e *EquipmentItem) QuantityCheckedOut() int {
	return e.QuantityTotal - e.QuantityAvailable
}

// EquipmentCheckout records units of an item leaving available stock.
// A checkout is OPEN while CheckedInAt is nil and transitions exactly once to
// CLOSED; it is never re-opened. Deleting a checkout row is an administrative
// correction and does not revert availability.
type EquipmentCheckout struct {
	ID                    string     `json:"id" gorm:"type:uuid;primaryKey"`
	EquipmentID           string     `json:"equipment_id" gorm:"type:uuid;not null;index"`
	CheckedOutBy          string     `json:"checked_out_by" gorm:"type:uuid;not null;index"`
	CheckedOutAt          time.Time  `json:"checked_out_at" gorm:"index;not null"`
	Quantity              int        `json:"quantity" gorm:"not null;check:quantity > 0"`
	ExpectedReturnDate    *time.Time `json:"expected_return_date,omitempty" gorm:"type:date"`
	CheckedInAt           *time.Time `json:"checked_in_at,omitempty" gorm:"index"`
	CheckedInBy           *string    `json:"checked_in_by,omitempty" gorm:"type:uuid"`
	DestinationLocationID *string    `json:"destination_location_id,omitempty" gorm:"type:uuid"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (EquipmentCheckout) TableName() string {
	return "equipment_checkouts"
}

// IsOpen reports whether the checkout has not been checked in yet
func (c *EquipmentCheckout) IsOpen() bool {
	return c.CheckedInAt == nil
}

// MaintenanceStatus tracks the lifecycle of a maintenance record
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

// EquipmentMaintenance records repair or servicing work on an item
type EquipmentMaintenance struct {
	ID          string            `json:"id" gorm:"type:uuid;primaryKey"`
	EquipmentID string            `json:"equipment_id" gorm:"type:uuid;not null;index"`
	ReportedBy  string            `json:"reported_by" gorm:"type:uuid;not null"`
	Description string            `json:"description" gorm:"not null"`
	Status      MaintenanceStatus `json:"status" gorm:"type:varchar(16);not null;default:'scheduled'"`
	Cost        float64           `json:"cost,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName specifies the table name
func (EquipmentMaintenance) TableName() string {
	return "equipment_maintenance"
}

// ItemFilter narrows item listings
type ItemFilter struct {
	CategoryID string
	LocationID string
	Condition  Condition
	Search     string
	Limit      int
	Offset     int
}

// CheckoutFilter narrows checkout listings
type CheckoutFilter struct {
	EquipmentID  string
	CheckedOutBy string
	OnlyOpen     bool
	OnlyClosed   bool
	Limit        int
	Offset       int
}

// EquipmentRepository defines the contract for inventory data access.
// Checkout, CheckIn, and UpdateItemTotal must keep the availability ledger
// consistent under concurrent callers; implementations are expected to use a
// single storage transaction with a conditional quantity update rather than a
// read-then-write sequence.
type EquipmentRepository interface {
	// Categories
	CreateCategory(ctx context.Context, category *EquipmentCategory) error
	FindCategoryByID(ctx context.Context, id string) (*EquipmentCategory, error)
	FindAllCategories(ctx context.Context) ([]EquipmentCategory, error)
	UpdateCategory(ctx context.Context, category *EquipmentCategory) error
	DeleteCategory(ctx context.Context, id string) error

	// Locations
	CreateLocation(ctx context.Context, location *Location) error
	FindLocationByID(ctx context.Context, id string) (*Location, error)
	FindAllLocations(ctx context.Context) ([]Location, error)
	UpdateLocation(ctx context.Context, location *Location) error
	DeleteLocation(ctx context.Context, id string) error

	// Items
	CreateItem(ctx context.Context, item *EquipmentItem) error
	FindItemByID(ctx context.Context, id string) (*EquipmentItem, error)
	FindAllItems(ctx context.Context, filter ItemFilter) ([]EquipmentItem, error)
	UpdateItem(ctx context.Context, item *EquipmentItem) error
	UpdateItemTotal(ctx context.Context, id string, newTotal int) (*EquipmentItem, error)
	DeleteItem(ctx context.Context, id string) error

	// Checkouts
	Checkout(ctx context.Context, checkout *EquipmentCheckout) error
	CheckIn(ctx context.Context, checkoutID, userID, notes string) (*EquipmentCheckout, error)
	FindCheckoutByID(ctx context.Context, id string) (*EquipmentCheckout, error)
	FindCheckouts(ctx context.Context, filter CheckoutFilter) ([]EquipmentCheckout, error)
	DeleteCheckout(ctx context.Context, id string) error

	// Maintenance
	CreateMaintenance(ctx context.Context, record *EquipmentMaintenance) error
	FindMaintenanceByID(ctx context.Context, id string) (*EquipmentMaintenance, error)
	FindMaintenance(ctx context.Context, equipmentID string, limit, offset int) ([]EquipmentMaintenance, error)
	UpdateMaintenance(ctx context.Context, record *EquipmentMaintenance) error
}
