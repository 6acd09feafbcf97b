package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campushq/backoffice/internal/pkg/logger"
)

// LocalStorage saves files to the local filesystem and maps them to URLs
// under the configured base URL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance. basePath is the root
// directory files are written to; baseURL is prepended to returned paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Save stores an uploaded file under subPath with a uuid filename.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext

	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	fileURL := strings.TrimRight(ls.baseURL, "/")
	if subPath != "" {
		fileURL += "/" + subPath
	}
	fileURL += "/" + uniqueFilename

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("url", fileURL).Msg("File saved")
	return fileURL, nil
}

// Delete removes a stored file by its URL. Missing files are treated as
// already deleted.
func (ls *LocalStorage) Delete(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	physicalPath := ls.physicalPath(fileURL)
	if physicalPath == "" {
		return fmt.Errorf("invalid file URL: %s", fileURL)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// physicalPath maps a stored file URL back to its location on disk,
// preserving the subdirectory segment when present.
func (ls *LocalStorage) physicalPath(fileURL string) string {
	rel := fileURL
	if ls.baseURL != "" {
		rel = strings.TrimPrefix(rel, strings.TrimRight(ls.baseURL, "/"))
	}
	rel = strings.Trim(rel, "/")

	filename := filepath.Base(rel)
	if filename == "" || filename == "." || filename == "/" {
		return ""
	}

	if dir := filepath.Dir(rel); dir != "." && !strings.Contains(dir, "..") {
		return filepath.Join(ls.basePath, dir, filename)
	}
	return filepath.Join(ls.basePath, filename)
}
