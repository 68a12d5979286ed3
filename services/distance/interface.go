package distance

import "context"

// Travel is a resolved one-way trip from the salon to a client address.
type Travel struct {
	Km            float64 `json:"km"`
	TravelMinutes int     `json:"travelMinutes"`
}

// Provider resolves a client address into distance and travel time. The
// scheduling engine never calls this itself; callers resolve travel before
// asking the engine anything. Provider failures surface as
// *scheduling.DependencyError so callers can retry or explicitly fall back
// to an on-site appointment.
type Provider interface {
	Resolve(ctx context.Context, address string) (Travel, error)
}
