package storage

import (
	"context"
)

// AllowImage lists the content types accepted for uploaded images.
var AllowImage = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// Storage persists uploaded files and returns a stable link to them.
type Storage interface {
	UploadFile(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileName string) error
}

func IsAllowedImage(contentType string) bool {
	for _, allowed := range AllowImage {
		if contentType == allowed {
			return true
		}
	}
	return false
}
