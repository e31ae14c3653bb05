package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoped-plan-backend/internal/apperrors"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/models"
	"emoped-plan-backend/internal/services"
	"emoped-plan-backend/internal/storage"
	"emoped-plan-backend/internal/store"
)

type assetFixture struct {
	svc   *services.AssetService
	store *store.Memory
	dir   string
}

func imageURL(id string) string {
	return "http://localhost:8080/api/images/" + id
}

func newAssetFixture(t *testing.T) assetFixture {
	t.Helper()
	dir := t.TempDir()
	blobs, err := storage.NewLocal(dir)
	require.NoError(t, err)

	mem := store.NewMemory()
	return assetFixture{
		svc:   services.NewAssetService(mem, blobs, imageURL, logger.Discard()),
		store: mem,
		dir:   dir,
	}
}

func (f assetFixture) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestAssetService_UploadRetrieveRoundTrip(t *testing.T) {
	f := newAssetFixture(t)
	ctx := context.Background()
	data := bytes.Repeat([]byte("j"), 100*1024)

	ref, err := f.svc.Upload(ctx, services.UploadInput{
		Data:         bytes.NewReader(data),
		MimeType:     "image/jpeg",
		Category:     "equipment",
		ItemID:       "eq-1",
		OriginalName: "photo.JPG",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ref.ID)
	assert.Equal(t, "http://localhost:8080/api/images/"+ref.ID, ref.URL)
	assert.Equal(t, []string{ref.ID + ".jpg"}, f.files(t))

	listed, err := f.svc.ListByCategory(ctx, "equipment", "eq-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, ref.ID, listed[0].ID)
	assert.Equal(t, int64(len(data)), listed[0].SizeBytes)
	assert.Equal(t, "photo.JPG", listed[0].OriginalName)

	dl, err := f.svc.Retrieve(ctx, ref.ID)
	require.NoError(t, err)
	defer dl.Body.Close()

	got, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/jpeg", dl.MimeType)
	assert.Equal(t, "photo.JPG", dl.OriginalName)
	assert.Equal(t, int64(len(data)), dl.Size)
}

func TestAssetService_UploadRejectsNonImage(t *testing.T) {
	f := newAssetFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, services.UploadInput{
		Data:         strings.NewReader("hello"),
		MimeType:     "text/plain",
		Category:     "equipment",
		OriginalName: "notes.txt",
	})
	assert.True(t, apperrors.IsInvalidInput(err))

	listed, err := f.svc.ListByCategory(ctx, "equipment", "")
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Empty(t, f.files(t))
}

func TestAssetService_UploadRejectsUnknownCategory(t *testing.T) {
	f := newAssetFixture(t)

	_, err := f.svc.Upload(context.Background(), services.UploadInput{
		Data:         strings.NewReader("png"),
		MimeType:     "image/png",
		Category:     "charger",
		OriginalName: "c.png",
	})
	assert.True(t, apperrors.IsInvalidInput(err))
	assert.Empty(t, f.files(t))
}

func TestAssetService_UploadAcceptsCategoryAlias(t *testing.T) {
	f := newAssetFixture(t)
	ctx := context.Background()

	ref, err := f.svc.Upload(ctx, services.UploadInput{
		Data:         strings.NewReader("png"),
		MimeType:     "image/png",
		Category:     "e-moped",
		OriginalName: "moped.png",
	})
	require.NoError(t, err)

	listed, err := f.svc.ListByCategory(ctx, "emoped", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, ref.ID, listed[0].ID)
	assert.Equal(t, models.CategoryEMoped, listed[0].Category)
}

func TestAssetService_FilenameIgnoresCallerPath(t *testing.T) {
	f := newAssetFixture(t)

	ref, err := f.svc.Upload(context.Background(), services.UploadInput{
		Data:         strings.NewReader("gif"),
		MimeType:     "image/gif",
		Category:     "battery",
		OriginalName: "../../etc/evil.G%IF",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{ref.ID + ".gif"}, f.files(t))
}

func TestAssetService_DeleteIsIdempotentAbsence(t *testing.T) {
	f := newAssetFixture(t)
	ctx := context.Background()

	ref, err := f.svc.Upload(ctx, services.UploadInput{
		Data:         strings.NewReader("webp"),
		MimeType:     "image/webp",
		Category:     "battery",
		OriginalName: "cell.webp",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, ref.ID))
	assert.Empty(t, f.files(t))

	_, err = f.svc.Retrieve(ctx, ref.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = f.svc.Delete(ctx, ref.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAssetService_DeleteToleratesMissingFile(t *testing.T) {
	f := newAssetFixture(t)
	ctx := context.Background()

	ref, err := f.svc.Upload(ctx, services.UploadInput{
		Data:         strings.NewReader("jpg"),
		MimeType:     "image/jpeg",
		Category:     "equipment",
		OriginalName: "a.jpg",
	})
	require.NoError(t, err)

	asset, err := f.store.FindImage(ctx, ref.ID)
	require.NoError(t, err)
	require.NoError(t, os.Remove(asset.StoragePath))

	_, err = f.svc.Retrieve(ctx, ref.ID)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, f.svc.Delete(ctx, ref.ID))
	_, err = f.store.FindImage(ctx, ref.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAssetService_RetrieveUnknown(t *testing.T) {
	f := newAssetFixture(t)

	_, err := f.svc.Retrieve(context.Background(), "does-not-exist")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAssetService_ConcurrentUploadsGetDistinctPaths(t *testing.T) {
	f := newAssetFixture(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref, err := f.svc.Upload(ctx, services.UploadInput{
				Data:         strings.NewReader("same bytes"),
				MimeType:     "image/png",
				Category:     "equipment",
				ItemID:       "eq-1",
				OriginalName: "same.png",
			})
			if assert.NoError(t, err) {
				ids <- ref.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Len(t, f.files(t), n)

	listed, err := f.svc.ListByCategory(ctx, "equipment", "eq-1")
	require.NoError(t, err)
	paths := map[string]bool{}
	for _, img := range listed {
		paths[img.StoragePath] = true
	}
	assert.Len(t, paths, n)
}

func TestAssetService_ListRejectsUnknownCategory(t *testing.T) {
	f := newAssetFixture(t)

	_, err := f.svc.ListByCategory(context.Background(), "nope", "")
	assert.True(t, apperrors.IsInvalidInput(err))
}

// failingImages fails every metadata insert.
type failingImages struct {
	*store.Memory
}

func (failingImages) InsertImage(context.Context, *models.ImageAsset) error {
	return errors.New("connection refused")
}

func TestAssetService_MetadataFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	blobs, err := storage.NewLocal(dir)
	require.NoError(t, err)

	svc := services.NewAssetService(failingImages{store.NewMemory()}, blobs, imageURL, logger.Discard())

	_, err = svc.Upload(context.Background(), services.UploadInput{
		Data:         strings.NewReader("jpg"),
		MimeType:     "image/jpeg",
		Category:     "equipment",
		OriginalName: "a.jpg",
	})
	assert.True(t, apperrors.IsStorageUnavailable(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// failingBlobs rejects every storage call, as a misconfigured bucket does.
type failingBlobs struct{}

func (failingBlobs) Put(context.Context, string, string, io.Reader) (string, int64, error) {
	return "", 0, errors.New("disk full")
}

func (failingBlobs) Open(context.Context, string) (io.ReadCloser, int64, error) {
	return nil, 0, errors.New("Bucket not found")
}

func (failingBlobs) Remove(context.Context, string) error {
	return errors.New("Bucket not found")
}

func TestAssetService_FileWriteFailureStoresNoMetadata(t *testing.T) {
	mem := store.NewMemory()
	svc := services.NewAssetService(mem, failingBlobs{}, imageURL, logger.Discard())
	ctx := context.Background()

	_, err := svc.Upload(ctx, services.UploadInput{
		Data:         strings.NewReader("jpg"),
		MimeType:     "image/jpeg",
		Category:     "equipment",
		ItemID:       "eq-1",
		OriginalName: "a.jpg",
	})
	assert.True(t, apperrors.IsStorageUnavailable(err))

	images, err := mem.ListImages(ctx, models.CategoryEquipment, "")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestAssetService_StorageOutageKeepsMetadata(t *testing.T) {
	mem := store.NewMemory()
	asset := &models.ImageAsset{
		ID:           "img-1",
		Category:     models.CategoryEquipment,
		OriginalName: "a.jpg",
		MimeType:     "image/jpeg",
		StoragePath:  "images/img-1.jpg",
	}
	require.NoError(t, mem.InsertImage(context.Background(), asset))
	svc := services.NewAssetService(mem, failingBlobs{}, imageURL, logger.Discard())
	ctx := context.Background()

	_, err := svc.Retrieve(ctx, "img-1")
	assert.True(t, apperrors.IsStorageUnavailable(err))
	assert.False(t, apperrors.IsNotFound(err))

	err = svc.Delete(ctx, "img-1")
	assert.True(t, apperrors.IsStorageUnavailable(err))

	images, err := mem.ListImages(ctx, models.CategoryEquipment, "")
	require.NoError(t, err)
	assert.Len(t, images, 1)
}
