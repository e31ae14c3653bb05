package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"emoped-plan-backend/internal/models"
)

const (
	plansCollection  = "business_plans"
	imagesCollection = "images"
)

// Mongo keeps plans and image metadata in two collections. CreateActivePlan
// issues deactivate and insert as two separate operations; concurrent creates
// can briefly leave two active plans.
type Mongo struct {
	client *mongo.Client
	plans  *mongo.Collection
	images *mongo.Collection
}

func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &Mongo{
		client: client,
		plans:  db.Collection(plansCollection),
		images: db.Collection(imagesCollection),
	}, nil
}

// EnsureIndexes creates the id and lookup indexes. Safe to call on every start.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.plans.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}

	_, err = m.images.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "item_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create image indexes: %w", err)
	}
	return nil
}

func (m *Mongo) FindActivePlan(ctx context.Context) (*models.BusinessPlan, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var plan models.BusinessPlan
	err := m.plans.FindOne(ctx, bson.M{"active": true}, opts).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active plan: %w", err)
	}
	return &plan, nil
}

func (m *Mongo) CreateActivePlan(ctx context.Context, plan *models.BusinessPlan) error {
	if _, err := m.plans.UpdateMany(ctx, bson.M{"active": true}, bson.M{"$set": bson.M{"active": false}}); err != nil {
		return fmt.Errorf("failed to deactivate plans: %w", err)
	}

	doc := *plan
	doc.Active = true
	if _, err := m.plans.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	plan.Active = true
	return nil
}

func (m *Mongo) UpdatePlanContent(ctx context.Context, id string, content models.PlanContent, updatedAt time.Time) error {
	res, err := m.plans.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"content": content, "updated_at": updatedAt}},
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ListPlans(ctx context.Context) ([]models.BusinessPlan, error) {
	cursor, err := m.plans.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]models.BusinessPlan, 0)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

func (m *Mongo) InsertImage(ctx context.Context, image *models.ImageAsset) error {
	if _, err := m.images.InsertOne(ctx, image); err != nil {
		return fmt.Errorf("failed to save image metadata: %w", err)
	}
	return nil
}

func (m *Mongo) FindImage(ctx context.Context, id string) (*models.ImageAsset, error) {
	var image models.ImageAsset
	err := m.images.FindOne(ctx, bson.M{"id": id}).Decode(&image)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image metadata: %w", err)
	}
	return &image, nil
}

func (m *Mongo) DeleteImage(ctx context.Context, id string) error {
	res, err := m.images.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete image metadata: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ListImages(ctx context.Context, category models.ImageCategory, itemID string) ([]models.ImageAsset, error) {
	filter := bson.M{"type": category}
	if itemID != "" {
		filter["item_id"] = itemID
	}

	// _id is an ObjectID, which sorts by insertion time.
	cursor, err := m.images.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images := make([]models.ImageAsset, 0)
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	return images, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
