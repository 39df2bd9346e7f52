package media

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngSignature is enough for content sniffing to report image/png.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func TestDiskStore_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/static/uploads")

	fh := fileHeader(t, "photo.png", pngSignature)
	asset, err := store.Upload(context.Background(), fh, "vehicles")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(asset.URL, "/static/uploads/vehicles/"))
	assert.True(t, strings.HasSuffix(asset.PublicID, ".png"))

	// File must exist under the base dir at the public_id path.
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(asset.PublicID)))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), asset.PublicID))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(asset.PublicID)))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStore_UploadKeepsExtensionFromMime(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	fh := fileHeader(t, "noext", pngSignature)
	asset, err := store.Upload(context.Background(), fh, "customers/cccd")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(asset.PublicID, ".png"))
	assert.True(t, strings.HasPrefix(asset.PublicID, "customers/cccd/"))
}

func TestDiskStore_RejectsEmptyFile(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	fh := fileHeader(t, "empty.png", nil)
	_, err := store.Upload(context.Background(), fh, "vehicles")

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestDiskStore_RejectsNonImage(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	fh := fileHeader(t, "notes.txt", []byte("just some text, not an image"))
	_, err := store.Upload(context.Background(), fh, "vehicles")

	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestDiskStore_DeleteMissingAsset(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	err := store.Delete(context.Background(), "vehicles/2026/01/nope.png")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestDiskStore_DeleteCleansTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/static/uploads")

	// A traversal handle must stay inside the base dir; the cleaned path
	// does not exist there, so this reports not-found instead of escaping.
	err := store.Delete(context.Background(), "../../outside.png")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestCleanupDelete_SwallowsErrors(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	assert.NotPanics(t, func() {
		CleanupDelete(context.Background(), store, "vehicles/2026/01/gone.png")
	})
}
