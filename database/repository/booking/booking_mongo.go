package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yungwing/database"
	"yungwing/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Primary query pattern: blocking bookings per date.
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// detailLookups joins service, staff and user documents onto a booking.
func detailLookups() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": "services", "localField": "service_id",
			"foreignField": "id", "as": "service",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$service", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "staff", "localField": "staff_id",
			"foreignField": "id", "as": "staff",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$staff", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "users", "localField": "user_id",
			"foreignField": "id", "as": "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
	}
}

func (r *MongoBookingRepo) aggregateDetails(filter bson.M, sort bson.D, skip, limit int64) ([]models.BookingDetail, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{{{Key: "$match", Value: filter}}}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline, detailLookups()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.BookingDetail{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return results, nil
}

// GetByID retrieves a booking with its joined service, staff and user.
func (r *MongoBookingRepo) GetByID(id string) (*models.BookingDetail, error) {
	results, err := r.aggregateDetails(bson.M{"id": id}, nil, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// GetByIDForUser retrieves a booking only if it belongs to the user.
func (r *MongoBookingRepo) GetByIDForUser(id, userID string) (*models.BookingDetail, error) {
	results, err := r.aggregateDetails(bson.M{"id": id, "user_id": userID}, nil, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ListActiveByDate fetches the bookings that block time on a date.
func (r *MongoBookingRepo) ListActiveByDate(date string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"status": bson.M{"$in": models.BlockingStatuses},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list active bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode active bookings: %w", err)
	}
	return bookings, nil
}

// ListByUser pages a member's bookings, newest date first.
func (r *MongoBookingRepo) ListByUser(userID, status string, page, limit int) ([]models.BookingDetail, int64, error) {
	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}
	total, err := r.count(filter)
	if err != nil {
		return nil, 0, err
	}
	sort := bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}}
	results, err := r.aggregateDetails(filter, sort, int64((page-1)*limit), int64(limit))
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// List pages all bookings with optional status and date filters.
func (r *MongoBookingRepo) List(status, date string, page, limit int) ([]models.BookingDetail, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if date != "" {
		filter["date"] = date
	}
	total, err := r.count(filter)
	if err != nil {
		return nil, 0, err
	}
	sort := bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}}
	results, err := r.aggregateDetails(filter, sort, int64((page-1)*limit), int64(limit))
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Recent returns the latest created bookings for the dashboard.
func (r *MongoBookingRepo) Recent(limit int) ([]models.BookingDetail, error) {
	return r.aggregateDetails(bson.M{}, bson.D{{Key: "created_at", Value: -1}}, 0, int64(limit))
}

// UpdateStatus sets a booking's status and returns the updated record.
func (r *MongoBookingRepo) UpdateStatus(id, status string) (*models.BookingDetail, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *MongoBookingRepo) count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return total, nil
}

func (r *MongoBookingRepo) CountAll() (int64, error) {
	return r.count(bson.M{})
}

func (r *MongoBookingRepo) CountByStatus(status string) (int64, error) {
	return r.count(bson.M{"status": status})
}

func (r *MongoBookingRepo) CountByDate(date string) (int64, error) {
	return r.count(bson.M{"date": date})
}

func (r *MongoBookingRepo) CountByUser(userID string) (int64, error) {
	return r.count(bson.M{"user_id": userID})
}

func (r *MongoBookingRepo) CountByService(serviceID string) (int64, error) {
	return r.count(bson.M{"service_id": serviceID})
}

func (r *MongoBookingRepo) CountByUserAndStatus(userID, status string) (int64, error) {
	return r.count(bson.M{"user_id": userID, "status": status})
}

// CompletePastConfirmed marks confirmed bookings on the given date that
// ended before endBefore as completed.
func (r *MongoBookingRepo) CompletePastConfirmed(date string, endBefore int) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.BookingConfirmed,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": date}},
			bson.M{"date": date, "end": bson.M{"$lte": endBefore}},
		},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingCompleted, "updated_at": time.Now()}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past bookings: %w", err)
	}
	return result.ModifiedCount, nil
}
