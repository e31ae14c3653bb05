package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	storagego "github.com/supabase-community/storage-go"
)

// Supabase keeps blobs in a Supabase Storage bucket under images/.
type Supabase struct {
	client *storagego.Client
	bucket string
}

func NewSupabase(supabaseURL, serviceRoleKey, bucket string) *Supabase {
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storagego.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &Supabase{
		client: client,
		bucket: bucket,
	}
}

// Put uploads in a single request; the object is visible only once it completes.
func (s *Supabase) Put(ctx context.Context, name, contentType string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	storagePath := "images/" + name
	upsert := false
	body := &countingReader{r: ctxReader{ctx: ctx, r: r}}
	_, err := s.client.UploadFile(s.bucket, storagePath, body, storagego.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, body.n, nil
}

func (s *Supabase) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	data, err := s.client.DownloadFile(s.bucket, path)
	if err != nil {
		if isObjectNotFound(err) {
			return nil, 0, ErrBlobNotFound
		}
		return nil, 0, fmt.Errorf("failed to download file: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

// Remove succeeds for absent objects: the storage API answers 200 with an
// empty list. Any error, including a missing bucket, is returned.
func (s *Supabase) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.client.RemoveFile(s.bucket, []string{path}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// isObjectNotFound matches only a missing object. A missing bucket is a
// configuration error and must surface as one.
func isObjectNotFound(err error) bool {
	var storageErr *storagego.StorageError
	if !errors.As(err, &storageErr) {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(storageErr.Message), "object not found")
}
