package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	staff    *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		services: database.Collection("services"),
		staff:    database.Collection("staff"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	serviceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "is_active", Value: 1}}},
	}
	if _, err := r.services.Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	staffIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.staff.Indexes().CreateMany(ctx, staffIndexes); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	return nil
}

func activeCondition(filter bson.M, active ActiveFilter) bson.M {
	switch active {
	case ActiveOnly:
		filter["is_active"] = true
	case InactiveOnly:
		filter["is_active"] = false
	}
	return filter
}

// ListServices returns catalogue entries, newest first.
func (r *MongoCatalogRepo) ListServices(category string, active ActiveFilter) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	activeCondition(filter, active)

	cursor, err := r.services.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetServiceByID retrieves one catalogue entry.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &service, nil
}

// ListCategories returns the distinct categories of active services.
func (r *MongoCatalogRepo) ListCategories() ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	values, err := r.services.Distinct(ctx, "category", bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// ListServicesByCategories returns active services in any of the categories.
func (r *MongoCatalogRepo) ListServicesByCategories(categories []string) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"category":  bson.M{"$in": categories},
		"is_active": true,
	}
	cursor, err := r.services.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services by categories: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// CreateService inserts a new catalogue entry.
func (r *MongoCatalogRepo) CreateService(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := r.services.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService applies a partial update and returns the new document.
func (r *MongoCatalogRepo) UpdateService(id string, updateDoc map[string]interface{}) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range updateDoc {
		set[k] = v
	}
	result, err := r.services.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetServiceByID(id)
}

// DeleteService removes a catalogue entry.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// ListStaff returns therapists, newest first.
func (r *MongoCatalogRepo) ListStaff(active ActiveFilter) ([]models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := activeCondition(bson.M{}, active)
	cursor, err := r.staff.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

// GetStaffByID retrieves one therapist.
func (r *MongoCatalogRepo) GetStaffByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	err := r.staff.FindOne(ctx, bson.M{"id": id}).Decode(&staff)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff %s: %w", id, err)
	}
	return &staff, nil
}
