package models

import "time"

// Booking statuses. Blocking statuses occupy a calendar slot; released
// statuses (cancelled, completed, no-show) never block. Which set counts as
// blocking is configuration owned by the booking store, not hardcoded logic.
const (
	StatusPending         = "pending"
	StatusAwaitingDeposit = "awaiting_deposit"
	StatusConfirmed       = "confirmed"
	StatusCancelled       = "cancelled"
	StatusCompleted       = "completed"
	StatusNoShow          = "no_show"
)

// Booking represents a reservation record.
type Booking struct {
	ID string `bson:"id" json:"id"` // UUID
	// GroupID is shared by the day-holds of one multi-day appointment.
	GroupID         string    `bson:"group_id,omitempty" json:"group_id,omitempty"`
	ServiceID       string    `bson:"service_id" json:"service_id"`             // resolved service identifier
	ClientName      string    `bson:"client_name" json:"client_name"`
	ClientPhone     string    `bson:"client_phone,omitempty" json:"client_phone,omitempty"`
	ClientAddress   string    `bson:"client_address,omitempty" json:"client_address,omitempty"` // empty for in-salon appointments
	Date            string    `bson:"date" json:"date"`                         // "YYYY-MM-DD"
	Start           int       `bson:"start" json:"start"`                       // visible start time, minutes from midnight
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"` // effective (quantity-resolved) duration
	TravelMinutes   int       `bson:"travel_minutes,omitempty" json:"travel_minutes,omitempty"` // one-way, 0 for in-salon
	DistanceKm      float64   `bson:"distance_km,omitempty" json:"distance_km,omitempty"`
	Units           int       `bson:"units,omitempty" json:"units,omitempty"`   // unit count for per-unit services
	FullDay         bool      `bson:"full_day" json:"full_day"`                 // occupies the single daily slot
	BlocksDays      int       `bson:"blocks_days" json:"blocks_days"`           // consecutive working days consumed
	TotalCents      int64     `bson:"total_cents" json:"total_cents"`
	Total           float64   `bson:"total" json:"total"`
	DepositCents    int64     `bson:"deposit_cents" json:"deposit_cents"`
	Status          string    `bson:"status" json:"status"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the transient input for an availability check or a
// reservation attempt. It is constructed per call and never persisted by the
// scheduling engine.
type BookingRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Start         int    `json:"start"`                   // minutes from midnight; ignored for full-day services
	ClientName    string `json:"clientName,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty"`
	Units         int    `json:"units,omitempty"`
	// FallbackOnsite opts in to treating a distance-provider failure as an
	// in-salon appointment instead of failing the request.
	FallbackOnsite bool `json:"fallbackOnsite,omitempty"`
}
