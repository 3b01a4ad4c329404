package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/thehellodigital/job-khuiji/config"
	"github.com/thehellodigital/job-khuiji/minio"
)

// MaxUploadSize is the ceiling for a single uploaded file (10 MiB).
const MaxUploadSize = 10 << 20

var ErrStorageUnavailable = errors.New("object storage not available")

type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// UploadImage streams the file into the configured upload folder and returns
// the public URL and the object name. Size and presence checks belong to the
// handler; nothing is sent to storage once they fail.
func (s *UploadService) UploadImage(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, string, error) {
	if minio.Client == nil {
		return "", "", ErrStorageUnavailable
	}

	objectName := fmt.Sprintf("%s/%s%s", config.MinioUploadFolder, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", err
	}
	return minio.PublicURL(objectName), objectName, nil
}
