// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the booking store. Which statuses count as
// "blocking" is injected at construction; released bookings never turn up
// in availability queries.
type BookingRepository interface {
	// ListBlockingByDate returns the bookings that occupy the calendar on
	// one date.
	ListBlockingByDate(ctx context.Context, date string) ([]models.Booking, error)
	// ListBlockingBetween returns blocking bookings for every date in
	// [from, to], grouped by date. Used by multi-day availability walks.
	ListBlockingBetween(ctx context.Context, from, to string) (map[string][]models.Booking, error)
	// GetByID returns the booking with the given ID, or nil when no such
	// booking exists.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListGroup returns every day-hold sharing a multi-day group ID.
	ListGroup(ctx context.Context, groupID string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	// UpdateStatus transitions a booking's status, e.g. releasing a slot on
	// cancellation. Bookings are never deleted.
	UpdateStatus(ctx context.Context, id, status string) error
	// EnsureIndexes creates the indexes availability queries depend on.
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll     *mongo.Collection
	blocking []string
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository filtering to
// the given blocking statuses.
func NewMongoBookingRepo(blockingStatuses []string) BookingRepository {
	return &mongoBookingRepo{
		coll:     database.Collection("bookings"),
		blocking: blockingStatuses,
	}
}
