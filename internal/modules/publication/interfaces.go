package publication

import (
	"context"
	"time"

	"creatorhub/internal/domain"
)

// ContentStore is the record-store boundary used by the publication service.
type ContentStore interface {
	GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error)
	UpdateFields(ctx context.Context, kind domain.ContentKind, id string, revision int64, fields map[string]any) error
}

// DeletionScheduler is the countdown authority. The publication service
// delegates to it when the destination set empties and when a pending item
// is re-published.
type DeletionScheduler interface {
	EnterPendingDeletion(item *domain.ContentItem)
	ClearDeletionMarkers(item *domain.ContentItem)
}

// Notifier pushes lifecycle events to the owner's dashboard. Best effort.
type Notifier interface {
	NotifyContentPublished(ctx context.Context, ownerID int64, kind domain.ContentKind, contentID string, dest domain.Destination)
	NotifyContentUnpublished(ctx context.Context, ownerID int64, kind domain.ContentKind, contentID string, dest domain.Destination)
	NotifyPendingDeletion(ctx context.Context, ownerID int64, kind domain.ContentKind, contentID string, autoDeleteAt time.Time)
}
