package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"
)

type localStorage struct {
	baseDir string
}

// NewLocalStorage stores uploads on disk under baseDir, creating the
// directory if needed.
func NewLocalStorage(baseDir string) Storage {
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		log.Errorf("failed to create upload directory %s: %v", baseDir, err)
	}
	return &localStorage{baseDir: baseDir}
}

func (s *localStorage) UploadFile(_ context.Context, fileName string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.baseDir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *localStorage) DeleteFile(_ context.Context, fileName string) error {
	return os.Remove(filepath.Join(s.baseDir, fileName))
}
