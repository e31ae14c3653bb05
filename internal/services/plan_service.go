package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"emoped-plan-backend/internal/apperrors"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/models"
	"emoped-plan-backend/internal/store"
)

// PlanService owns the business plan documents. At most one plan is active;
// creating a plan retires the previous one.
type PlanService struct {
	plans store.PlanRepository
	log   *slog.Logger
	now   func() time.Time
}

func NewPlanService(plans store.PlanRepository, log *slog.Logger) *PlanService {
	return &PlanService{
		plans: plans,
		log:   logger.WithComponent(log, "plans"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// GetActivePlan returns the active plan.
func (s *PlanService) GetActivePlan(ctx context.Context) (*models.BusinessPlan, error) {
	plan, err := s.plans.FindActivePlan(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("business plan not found")
	}
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("failed to load business plan", err)
	}
	return plan, nil
}

// CreatePlan stores content as a new active plan and returns its id.
func (s *PlanService) CreatePlan(ctx context.Context, content models.PlanContent) (string, error) {
	now := s.now()
	plan := &models.BusinessPlan{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.plans.CreateActivePlan(ctx, plan); err != nil {
		return "", apperrors.NewStorageUnavailableError("failed to create business plan", err)
	}

	s.log.Info("business plan created", "plan_id", plan.ID)
	return plan.ID, nil
}

// ReplacePlanContent overwrites the content of plan id. Its active flag and
// creation time are left alone.
func (s *PlanService) ReplacePlanContent(ctx context.Context, id string, content models.PlanContent) error {
	if id == "" {
		return apperrors.NewInvalidInputError("plan id is required")
	}

	err := s.plans.UpdatePlanContent(ctx, id, content, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NewNotFoundError("business plan not found")
	}
	if err != nil {
		return apperrors.NewStorageUnavailableError("failed to update business plan", err)
	}

	s.log.Info("business plan updated", "plan_id", id)
	return nil
}

// ListPlans returns every stored plan, newest first.
func (s *PlanService) ListPlans(ctx context.Context) ([]models.BusinessPlan, error) {
	plans, err := s.plans.ListPlans(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("failed to list business plans", err)
	}
	return plans, nil
}

// EnsureSeeded creates seed as the active plan when no active plan exists.
func (s *PlanService) EnsureSeeded(ctx context.Context, seed models.PlanContent) (bool, error) {
	_, err := s.plans.FindActivePlan(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, apperrors.NewStorageUnavailableError("failed to check for active plan", err)
	}

	id, err := s.CreatePlan(ctx, seed)
	if err != nil {
		return false, err
	}

	s.log.Info("seeded business plan", "plan_id", id)
	return true, nil
}
