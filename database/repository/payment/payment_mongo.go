package paymentRepo

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

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	payments *mongo.Collection
	points   *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{
		payments: database.Collection("payments"),
		points:   database.Collection("points_history"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	paymentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.payments.Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}

	pointsIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := r.points.Indexes().CreateMany(ctx, pointsIndexes); err != nil {
		return fmt.Errorf("failed to create points indexes: %w", err)
	}
	return nil
}

// Create inserts a payment record.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	payment.CreatedAt = time.Now()
	if _, err := r.payments.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// bookingLookup joins the booking (with its service) onto a payment.
func bookingLookup() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": "bookings", "localField": "booking_id",
			"foreignField": "id", "as": "booking",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$booking", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "services", "localField": "booking.service_id",
			"foreignField": "id", "as": "booking.service",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$booking.service", "preserveNullAndEmptyArrays": true}}},
	}
}

func (r *MongoPaymentRepo) aggregateDetails(filter bson.M, skip, limit int64) ([]models.PaymentDetail, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline, bookingLookup()...)

	cursor, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.PaymentDetail{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return results, nil
}

// GetByIDForUser retrieves a payment only if it belongs to the user.
func (r *MongoPaymentRepo) GetByIDForUser(id, userID string) (*models.PaymentDetail, error) {
	results, err := r.aggregateDetails(bson.M{"id": id, "user_id": userID}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ListByUser pages a member's payments, newest first.
func (r *MongoPaymentRepo) ListByUser(userID, status string, page, limit int) ([]models.PaymentDetail, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}
	total, err := r.payments.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	results, err := r.aggregateDetails(filter, int64((page-1)*limit), int64(limit))
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// AddPointsEntry appends to the loyalty ledger.
func (r *MongoPaymentRepo) AddPointsEntry(entry *models.PointsEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.points.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to add points entry: %w", err)
	}
	return nil
}

// ListPointsByUser pages a member's points ledger, newest first.
func (r *MongoPaymentRepo) ListPointsByUser(userID, entryType string, page, limit int) ([]models.PointsEntry, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if entryType != "" {
		filter["type"] = entryType
	}
	total, err := r.points.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count points entries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.points.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list points entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.PointsEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, fmt.Errorf("failed to decode points entries: %w", err)
	}
	return entries, total, nil
}

// SumCompleted totals all completed payments.
func (r *MongoPaymentRepo) SumCompleted() (float64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.PaymentCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode payment sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// Revenue aggregates completed payments over an optional date range,
// bucketed per day.
func (r *MongoPaymentRepo) Revenue(startDate, endDate string) (*models.RevenueReport, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	match := bson.M{"status": models.PaymentCompleted}
	if startDate != "" && endDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		match["created_at"] = bson.M{"$gte": start, "$lte": end.AddDate(0, 0, 1)}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":    bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"amount": bson.M{"$sum": "$amount"},
			"count":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	daily := []models.DailyRevenue{}
	if err := cursor.All(ctx, &daily); err != nil {
		return nil, fmt.Errorf("failed to decode revenue buckets: %w", err)
	}

	report := &models.RevenueReport{DailyRevenue: daily}
	for _, d := range daily {
		report.TotalRevenue += d.Amount
		report.TotalTransactions += d.Count
	}
	return report, nil
}
