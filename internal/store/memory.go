package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"emoped-plan-backend/internal/models"
)

// Memory keeps both collections in process. CreateActivePlan runs under the
// write lock, so concurrent creates cannot leave two active plans here.
type Memory struct {
	mu     sync.RWMutex
	plans  []models.BusinessPlan
	images []models.ImageAsset
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) FindActivePlan(ctx context.Context) (*models.BusinessPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *models.BusinessPlan
	for i := range m.plans {
		p := &m.plans[i]
		if !p.Active {
			continue
		}
		if found == nil || !p.CreatedAt.Before(found.CreatedAt) {
			found = p
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return clonePlan(found)
}

func (m *Memory) CreateActivePlan(ctx context.Context, plan *models.BusinessPlan) error {
	stored, err := clonePlan(plan)
	if err != nil {
		return err
	}
	stored.Active = true

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.plans {
		m.plans[i].Active = false
	}
	m.plans = append(m.plans, *stored)
	plan.Active = true
	return nil
}

func (m *Memory) UpdatePlanContent(ctx context.Context, id string, content models.PlanContent, updatedAt time.Time) error {
	c, err := cloneContent(content)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.plans {
		if m.plans[i].ID == id {
			m.plans[i].Content = c
			m.plans[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ListPlans(ctx context.Context) ([]models.BusinessPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plans := make([]models.BusinessPlan, 0, len(m.plans))
	for i := len(m.plans) - 1; i >= 0; i-- {
		p, err := clonePlan(&m.plans[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

func (m *Memory) InsertImage(ctx context.Context, image *models.ImageAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.images = append(m.images, *image)
	return nil
}

func (m *Memory) FindImage(ctx context.Context, id string) (*models.ImageAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, img := range m.images {
		if img.ID == id {
			found := img
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteImage(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, img := range m.images {
		if img.ID == id {
			m.images = append(m.images[:i], m.images[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ListImages(ctx context.Context, category models.ImageCategory, itemID string) ([]models.ImageAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	images := make([]models.ImageAsset, 0)
	for _, img := range m.images {
		if img.Category != category {
			continue
		}
		if itemID != "" && img.ItemID != itemID {
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *Memory) Close() error {
	return nil
}

// clonePlan deep-copies through JSON so callers never share slices with the store.
func clonePlan(p *models.BusinessPlan) (*models.BusinessPlan, error) {
	c, err := cloneContent(p.Content)
	if err != nil {
		return nil, err
	}
	out := *p
	out.Content = c
	return &out, nil
}

func cloneContent(content models.PlanContent) (models.PlanContent, error) {
	var out models.PlanContent
	raw, err := json.Marshal(content)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
