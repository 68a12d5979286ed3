package models

import "fmt"

// ServiceDefinition describes one entry of the salon's immutable service registry.
// Definitions are loaded once at startup and never mutated afterwards; per-unit
// services are resolved into a ResolvedService once the unit count is known.
type ServiceDefinition struct {
	ID              string  `bson:"id" json:"id"`                           // e.g. "balayage", "reparation_locks"
	Name            string  `bson:"name" json:"name"`                       // display name
	Category        string  `bson:"category" json:"category"`               // e.g. "color", "locks", "bridal"
	PriceCents      int64   `bson:"priceCents" json:"priceCents"`           // price in minor currency units
	Price           float64 `bson:"price" json:"price"`                     // same price in major units
	PriceIsMinimum  bool    `bson:"priceIsMinimum" json:"priceIsMinimum"`   // price is a floor, final amount decided in person
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"` // base service duration
	BlocksFullDay   bool    `bson:"blocksFullDay" json:"blocksFullDay"`     // occupies the single daily slot
	BlocksDays      int     `bson:"blocksDays" json:"blocksDays"`           // consecutive working days consumed (>= 1)
	PerUnit         bool    `bson:"perUnit" json:"perUnit"`                 // price and duration scale with a unit count
	UnitType        string  `bson:"unitType,omitempty" json:"unitType,omitempty"`
}

// ResolvedService is a quantity-resolved instance of a ServiceDefinition.
// For per-unit services the effective duration and price only exist once the
// unit count is known; resolving returns a fresh value instead of mutating the
// shared definition, so concurrent quotes never race.
type ResolvedService struct {
	ServiceDefinition
	Units int `json:"units"`
}

// Resolve produces the quantity-resolved instance of the definition.
// units <= 0 defaults to 1. Non per-unit services ignore the unit count.
func (s ServiceDefinition) Resolve(units int) ResolvedService {
	if units <= 0 {
		units = 1
	}
	r := ResolvedService{ServiceDefinition: s, Units: 1}
	if !s.PerUnit {
		return r
	}
	r.Units = units
	r.PriceCents = s.PriceCents * int64(units)
	r.Price = s.Price * float64(units)
	r.DurationMinutes = s.DurationMinutes * units
	return r
}

// Validate enforces registry invariants at load time.
func (s ServiceDefinition) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("service definition missing id")
	}
	if s.DurationMinutes <= 0 && !s.PerUnit {
		return fmt.Errorf("service %q: duration must be positive", s.ID)
	}
	if s.BlocksDays < 1 {
		return fmt.Errorf("service %q: blocksDays must be >= 1", s.ID)
	}
	if s.BlocksDays > 1 && !s.BlocksFullDay {
		return fmt.Errorf("service %q: multi-day services must block the full day", s.ID)
	}
	return nil
}
