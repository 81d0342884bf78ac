package kafka

import "time"

// EquipmentCheckedOutEvent represents units leaving available stock
type EquipmentCheckedOutEvent struct {
	EventID            string    `json:"event_id"`
	EventType          string    `json:"event_type"`
	CheckoutID         string    `json:"checkout_id"`
	EquipmentID        string    `json:"equipment_id"`
	EquipmentName      string    `json:"equipment_name"`
	Quantity           int       `json:"quantity"`
	CheckedOutBy       string    `json:"checked_out_by"`
	ExpectedReturnDate string    `json:"expected_return_date,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// EquipmentCheckedInEvent represents units returning to available stock
type EquipmentCheckedInEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	CheckoutID  string    `json:"checkout_id"`
	EquipmentID string    `json:"equipment_id"`
	Quantity    int       `json:"quantity"`
	CheckedInBy string    `json:"checked_in_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeEquipmentCheckedOut = "equipment.checked_out"
	EventTypeEquipmentCheckedIn  = "equipment.checked_in"
)

// Kafka topics
const (
	TopicEquipmentCheckouts = "equipment-checkouts"
)
