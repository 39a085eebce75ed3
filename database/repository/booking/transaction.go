package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"yungwing/models"
	"yungwing/services/scheduling"
)

// CreateIfNoConflict inserts a booking inside a mongo session
// transaction. The conflict check re-reads the blocking bookings of the
// date within the transaction, so a concurrent insert of an overlapping
// interval will make one of the two transactions fail rather than
// double-book the slot. Callers may retry on transient transaction
// errors; scheduling.ErrSlotConflict is final.
func (r *MongoBookingRepo) CreateIfNoConflict(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"date":   booking.Date,
			"status": bson.M{"$in": models.BlockingStatuses},
		}
		cursor, err := r.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		var active []models.Booking
		if err := cursor.All(sc, &active); err != nil {
			return fmt.Errorf("conflict re-check decode failed: %w", err)
		}

		proposed := scheduling.Interval{
			Start: scheduling.TimeOfDay(booking.Start),
			End:   scheduling.TimeOfDay(booking.End),
		}
		if err := scheduling.ValidateNoConflict(proposed, scheduling.BlockingIntervals(active)); err != nil {
			return err
		}

		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
