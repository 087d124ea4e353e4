package media

import (
	"context"

	"creatorhub/internal/domain"
)

type ContentCreator interface {
	Create(ctx context.Context, c *domain.ContentItem) error
}

// BlobStore holds the raw media bytes (S3-compatible).
type BlobStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Transcoder is the external media-processing collaborator. Only the
// boundary is modeled here; encoding correctness is its problem.
type Transcoder interface {
	EnqueueTranscode(ctx context.Context, kind domain.ContentKind, contentID, objectKey string) error
}
