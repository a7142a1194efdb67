package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/attendlyhq/attendly-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type FileService interface {
	// ArchiveExport stores a raw device export file and returns its key.
	ArchiveExport(ctx context.Context, file io.Reader, filename string) (string, error)

	// OpenExport retrieves a previously archived export file.
	OpenExport(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes a stored file.
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// ArchiveExport stores the original export so a bad parse can be re-run.
func (s *fileServiceImpl) ArchiveExport(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".dat", ".txt", ".csv", ".xls", ".xlsx"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only dat, txt, csv, xls, xlsx allowed")
	}

	now := time.Now().UTC()
	uniqueID := uuid.New().String()
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	newFilename := fmt.Sprintf("%s-%s%s", uniqueID, base, ext)
	path := filepath.Join("exports", now.Format("2006"), now.Format("01"), newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to archive export file: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) OpenExport(ctx context.Context, path string) (io.ReadCloser, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check export file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("export file not found: %s", path)
	}
	return s.storage.Download(ctx, path)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
