package media

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrAssetNotFound   = errors.New("asset not found")
)

// Asset is a stored media file: the public URL plus the opaque handle
// required to delete it later.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Store hosts uploaded images and hands back retrievable URLs plus deletion
// handles. Upload failures abort the surrounding operation; deletions are
// best-effort at call sites (see CleanupDelete).
type Store interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// CleanupDelete removes a remote asset and never propagates the failure.
// Replacing or removing a record must not fail because an old image could
// not be cleaned up; the error is logged and dropped.
func CleanupDelete(ctx context.Context, store Store, publicID string) {
	if publicID == "" {
		return
	}
	if err := store.Delete(ctx, publicID); err != nil {
		log.Printf("media cleanup failed public_id=%s error=%v", publicID, err)
	}
}
