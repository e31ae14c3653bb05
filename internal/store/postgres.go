package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"emoped-plan-backend/internal/models"
)

// Postgres stores plans as JSONB documents and image metadata as rows.
// CreateActivePlan runs deactivate+insert in one transaction; two concurrent
// creates may still both commit an active row, FindActivePlan then picks the
// newest.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(connectionString string) (*Postgres, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{db: db}, nil
}

// DB exposes the pool for the migrator.
func (p *Postgres) DB() *sql.DB {
	return p.db
}

func (p *Postgres) FindActivePlan(ctx context.Context) (*models.BusinessPlan, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, content, active, created_at, updated_at
		FROM business_plans
		WHERE active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`)

	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active plan: %w", err)
	}
	return plan, nil
}

func (p *Postgres) CreateActivePlan(ctx context.Context, plan *models.BusinessPlan) error {
	contentJSON, err := json.Marshal(plan.Content)
	if err != nil {
		return fmt.Errorf("failed to encode plan content: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE business_plans SET active = FALSE WHERE active = TRUE`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to deactivate plans: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO business_plans (id, content, active, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $4)
	`, plan.ID, string(contentJSON), plan.CreatedAt, plan.UpdatedAt); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}

	plan.Active = true
	return nil
}

func (p *Postgres) UpdatePlanContent(ctx context.Context, id string, content models.PlanContent, updatedAt time.Time) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode plan content: %w", err)
	}

	res, err := p.db.ExecContext(ctx, `
		UPDATE business_plans
		SET content = $1, updated_at = $2
		WHERE id = $3
	`, string(contentJSON), updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListPlans(ctx context.Context) ([]models.BusinessPlan, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, content, active, created_at, updated_at
		FROM business_plans
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]models.BusinessPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, *plan)
	}

	return plans, rows.Err()
}

func (p *Postgres) InsertImage(ctx context.Context, image *models.ImageAsset) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO images (id, type, item_id, filename, original_name, mime_type, size_bytes, storage_path, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, image.ID, string(image.Category), nullString(image.ItemID), image.Filename, image.OriginalName,
		image.MimeType, image.SizeBytes, image.StoragePath, image.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to save image metadata: %w", err)
	}
	return nil
}

func (p *Postgres) FindImage(ctx context.Context, id string) (*models.ImageAsset, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, type, item_id, filename, original_name, mime_type, size_bytes, storage_path, uploaded_at
		FROM images
		WHERE id = $1
	`, id)

	image, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image metadata: %w", err)
	}
	return image, nil
}

func (p *Postgres) DeleteImage(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image metadata: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete image metadata: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListImages(ctx context.Context, category models.ImageCategory, itemID string) ([]models.ImageAsset, error) {
	query := `
		SELECT id, type, item_id, filename, original_name, mime_type, size_bytes, storage_path, uploaded_at
		FROM images
		WHERE type = $1`
	args := []any{string(category)}
	if itemID != "" {
		query += ` AND item_id = $2`
		args = append(args, itemID)
	}
	query += ` ORDER BY seq ASC`

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := make([]models.ImageAsset, 0)
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, *image)
	}

	return images, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*models.BusinessPlan, error) {
	var plan models.BusinessPlan
	var content []byte
	if err := row.Scan(&plan.ID, &content, &plan.Active, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &plan.Content); err != nil {
		return nil, fmt.Errorf("failed to decode plan content: %w", err)
	}
	return &plan, nil
}

func scanImage(row rowScanner) (*models.ImageAsset, error) {
	var image models.ImageAsset
	var category string
	var itemID sql.NullString
	err := row.Scan(
		&image.ID, &category, &itemID, &image.Filename, &image.OriginalName,
		&image.MimeType, &image.SizeBytes, &image.StoragePath, &image.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	image.Category = models.ImageCategory(category)
	image.ItemID = itemID.String
	return &image, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
