package models

// AvailableSlot is one bookable start time on a given date.
type AvailableSlot struct {
	Start      int    `json:"start"`      // minutes from midnight (e.g. 540 for 9:00 AM)
	StartClock string `json:"startClock"` // same instant as "15:04"
	BlockStart int    `json:"blockStart"` // provider departure, travel included
	BlockEnd   int    `json:"blockEnd"`   // provider return, travel and safety margin included
}

// DayAvailability is the full availability answer for one date and service.
// When Available is false, Reason carries the business explanation
// (closed day, day fully booked, multi-day conflict) — it is an expected
// outcome, not an error.
type DayAvailability struct {
	Date      string          `json:"date"`
	ServiceID string          `json:"serviceId"`
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Slots     []AvailableSlot `json:"slots,omitempty"`
	// Dates is set for multi-day services: the consecutive working days the
	// appointment would occupy.
	Dates []string `json:"dates,omitempty"`
	// ConflictDate names the first blocked day of a failed multi-day request.
	ConflictDate string `json:"conflictDate,omitempty"`
}
