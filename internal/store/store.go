// Package store is the document store adapter: CRUD over the plans and image
// metadata collections. Backends: memory, postgres (JSONB) and mongo.
package store

import (
	"context"
	"errors"
	"time"

	"emoped-plan-backend/internal/models"
)

// ErrNotFound is returned when no document matches.
var ErrNotFound = errors.New("document not found")

type PlanRepository interface {
	// FindActivePlan returns the active plan. If more than one is active the
	// most recently created wins.
	FindActivePlan(ctx context.Context) (*models.BusinessPlan, error)
	// CreateActivePlan sets active=false on every stored plan, then inserts
	// plan with active=true.
	CreateActivePlan(ctx context.Context, plan *models.BusinessPlan) error
	// UpdatePlanContent replaces content and updated_at of plan id.
	UpdatePlanContent(ctx context.Context, id string, content models.PlanContent, updatedAt time.Time) error
	// ListPlans returns every plan, newest first.
	ListPlans(ctx context.Context) ([]models.BusinessPlan, error)
}

type ImageRepository interface {
	InsertImage(ctx context.Context, image *models.ImageAsset) error
	FindImage(ctx context.Context, id string) (*models.ImageAsset, error)
	DeleteImage(ctx context.Context, id string) error
	// ListImages filters by category and, when itemID is not empty, item id.
	ListImages(ctx context.Context, category models.ImageCategory, itemID string) ([]models.ImageAsset, error)
}

type DocumentStore interface {
	PlanRepository
	ImageRepository
	Ping(ctx context.Context) error
	Close() error
}
