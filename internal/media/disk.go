package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize    = 10 * 1024 * 1024 // 10 MB
	DefaultBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// allowedMimeTypes defines which file types are accepted
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// DiskStore keeps assets on the local filesystem and serves them over the
// static route. The public_id handle is the asset's relative path, opaque
// to callers.
type DiskStore struct {
	baseDir    string
	staticBase string
}

func NewDiskStore(baseDir, staticBase string) *DiskStore {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &DiskStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *DiskStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*Asset, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if !allowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	// Directory layout: <folder>/YYYY/MM/
	now := time.Now()
	folder = cleanFolder(folder)
	relDir := filepath.Join(folder, fmt.Sprintf("%d/%02d", now.Year(), now.Month()))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := uuid.New().String() + ext

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	publicID := strings.ReplaceAll(filepath.Join(relDir, filename), "\\", "/")
	return &Asset{
		URL:      s.staticBase + "/" + publicID,
		PublicID: publicID,
	}, nil
}

func (s *DiskStore) Delete(ctx context.Context, publicID string) error {
	rel := filepath.Clean("/" + publicID) // forbid path escapes
	absPath := filepath.Join(s.baseDir, rel)
	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrAssetNotFound
		}
		return err
	}
	return nil
}

func cleanFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return "misc"
	}
	return folder
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
