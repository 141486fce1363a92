package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores project attachments in an S3-compatible bucket and hands
// back publicly reachable URLs.
type Uploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicURL := cfg.StoragePublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.StorageUseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.StorageEndpoint
	}

	return &Uploader{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// AllowedContentType accepts images and PDFs only.
func AllowedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeFilename collapses whitespace runs into single dashes.
func SanitizeFilename(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-")
}

// Upload stores the file under <userID>/<unix-ms>-<sanitized-name> and
// returns its public URL.
func (u *Uploader) Upload(ctx context.Context, userID uuid.UUID, header *multipart.FileHeader, contentType string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	objectName := fmt.Sprintf("%s/%d-%s", userID, time.Now().UnixMilli(), SanitizeFilename(header.Filename))

	_, err = u.client.PutObject(ctx, u.bucket, objectName, src, header.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return u.publicURL + "/" + u.bucket + "/" + objectName, nil
}
