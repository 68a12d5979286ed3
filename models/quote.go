package models

// Quote is a priced booking proposal. Every amount is carried in both major
// units and minor units because downstream systems persist cents; the two
// representations always agree to the cent.
type Quote struct {
	ServiceID         string  `json:"serviceId"`
	Units             int     `json:"units"`
	ServicePrice      float64 `json:"servicePrice"`
	ServicePriceCents int64   `json:"servicePriceCents"`
	PriceIsMinimum    bool    `json:"priceIsMinimum"`
	TravelFee         float64 `json:"travelFee"`
	TravelFeeCents    int64   `json:"travelFeeCents"`
	Total             float64 `json:"total"`
	TotalCents        int64   `json:"totalCents"`
	Deposit           float64 `json:"deposit"`
	DepositCents      int64   `json:"depositCents"` // ceiling-rounded, a deposit never under-collects
	DurationMinutes   int     `json:"durationMinutes"`
	Currency          string  `json:"currency"`
}
