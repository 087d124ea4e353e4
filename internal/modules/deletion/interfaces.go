package deletion

import (
	"context"
	"time"

	"creatorhub/internal/domain"
)

// ContentStore is the record-store boundary: a keyed read and a
// revision-conditioned partial write against the kind-selected table.
type ContentStore interface {
	GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error)
	UpdateFields(ctx context.Context, kind domain.ContentKind, id string, revision int64, fields map[string]any) error
	ListSweepDue(ctx context.Context, now time.Time) ([]*domain.ContentItem, error)
}

// LikesRemover deletes dependent interaction records on hard delete.
type LikesRemover interface {
	DeleteForContent(ctx context.Context, kind domain.ContentKind, contentID string) error
}

// Notifier pushes lifecycle events to the owner's dashboard. Best effort.
type Notifier interface {
	NotifyContentSaved(ctx context.Context, ownerID int64, kind domain.ContentKind, contentID string)
	NotifyContentRestored(ctx context.Context, ownerID int64, kind domain.ContentKind, contentID string)
	NotifyContentDeleted(ctx context.Context, ownerID int64, kind domain.ContentKind, contentID string)
}
