// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes availability queries depend on. The
// unique (date, start) partial index over blocking statuses rejects two
// commits for the identical start time; overlapping bookings at different
// start times are not caught here — Reserve re-validates against fresh
// store data just before inserting, which narrows that race to the window
// between its read and its write.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": r.blocking},
			}),
		},
	})
	return err
}
