package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"emoped-plan-backend/internal/apperrors"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/models"
	"emoped-plan-backend/internal/storage"
	"emoped-plan-backend/internal/store"
)

// UploadInput is one incoming image.
type UploadInput struct {
	Data         io.Reader
	MimeType     string
	Category     string
	ItemID       string
	OriginalName string
}

// AssetRef identifies a stored image and where clients can fetch it.
type AssetRef struct {
	ID  string
	URL string
}

// Download is an open image ready to be streamed. Callers close Body.
type Download struct {
	Body         io.ReadCloser
	MimeType     string
	OriginalName string
	Size         int64
}

// AssetService keeps image bytes in a BlobStore and their metadata in the
// document store. Bytes are written before metadata and removed before
// metadata, so a listed asset always had its bytes written.
type AssetService struct {
	images   store.ImageRepository
	blobs    storage.BlobStore
	imageURL func(id string) string
	log      *slog.Logger
	now      func() time.Time
}

func NewAssetService(images store.ImageRepository, blobs storage.BlobStore, imageURL func(id string) string, log *slog.Logger) *AssetService {
	return &AssetService{
		images:   images,
		blobs:    blobs,
		imageURL: imageURL,
		log:      logger.WithComponent(log, "assets"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AssetService) Upload(ctx context.Context, in UploadInput) (*AssetRef, error) {
	if !strings.HasPrefix(strings.ToLower(in.MimeType), "image/") {
		return nil, apperrors.NewInvalidInputError("file must be an image")
	}
	category, ok := models.ParseImageCategory(in.Category)
	if !ok {
		return nil, apperrors.NewInvalidInputError("unknown image category")
	}
	if in.Data == nil {
		return nil, apperrors.NewInvalidInputError("file is required")
	}

	id := uuid.NewString()
	filename := id + fileExtension(in.OriginalName)

	path, size, err := s.blobs.Put(ctx, filename, in.MimeType, in.Data)
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("failed to store image", err)
	}

	asset := &models.ImageAsset{
		ID:           id,
		Category:     category,
		ItemID:       strings.TrimSpace(in.ItemID),
		Filename:     filename,
		OriginalName: in.OriginalName,
		MimeType:     in.MimeType,
		SizeBytes:    size,
		StoragePath:  path,
		UploadedAt:   s.now(),
	}

	if err := s.images.InsertImage(ctx, asset); err != nil {
		if rmErr := s.blobs.Remove(context.WithoutCancel(ctx), path); rmErr != nil {
			s.log.Warn("failed to remove orphaned image file", "path", path, "error", rmErr)
		}
		return nil, apperrors.NewStorageUnavailableError("failed to save image", err)
	}

	s.log.Info("image uploaded",
		"image_id", id,
		"category", category,
		"item_id", asset.ItemID,
		"size", size,
	)

	return &AssetRef{ID: id, URL: s.imageURL(id)}, nil
}

func (s *AssetService) Retrieve(ctx context.Context, id string) (*Download, error) {
	asset, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	body, size, err := s.blobs.Open(ctx, asset.StoragePath)
	if errors.Is(err, storage.ErrBlobNotFound) {
		s.log.Error("image metadata has no file", "image_id", id, "path", asset.StoragePath)
		return nil, apperrors.NewNotFoundError("image not found")
	}
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("failed to read image", err)
	}

	return &Download{
		Body:         body,
		MimeType:     asset.MimeType,
		OriginalName: asset.OriginalName,
		Size:         size,
	}, nil
}

// Delete removes the bytes first, then the metadata. A file that is already
// gone does not stop the metadata from being removed.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	asset, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, asset.StoragePath); err != nil {
		return apperrors.NewStorageUnavailableError("failed to delete image file", err)
	}

	err = s.images.DeleteImage(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		// Lost a race with another delete of the same id.
		return apperrors.NewNotFoundError("image not found")
	}
	if err != nil {
		return apperrors.NewStorageUnavailableError("failed to delete image", err)
	}

	s.log.Info("image deleted", "image_id", id)
	return nil
}

// ListByCategory returns metadata for category in upload order, optionally
// narrowed to a single item.
func (s *AssetService) ListByCategory(ctx context.Context, category, itemID string) ([]models.ImageAsset, error) {
	c, ok := models.ParseImageCategory(category)
	if !ok {
		return nil, apperrors.NewInvalidInputError("unknown image category")
	}

	images, err := s.images.ListImages(ctx, c, strings.TrimSpace(itemID))
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("failed to list images", err)
	}
	return images, nil
}

func (s *AssetService) find(ctx context.Context, id string) (*models.ImageAsset, error) {
	if id == "" {
		return nil, apperrors.NewNotFoundError("image not found")
	}

	asset, err := s.images.FindImage(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("image not found")
	}
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("failed to load image", err)
	}
	return asset, nil
}

// fileExtension keeps only [a-z0-9.] from the lower-cased extension of name.
func fileExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range ext {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() <= 1 {
		return ""
	}
	return b.String()
}
