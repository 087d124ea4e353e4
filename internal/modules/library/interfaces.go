package library

import (
	"context"

	"creatorhub/internal/domain"
)

type ContentLister interface {
	ListByOwner(ctx context.Context, kind domain.ContentKind, ownerID int64) ([]*domain.ContentItem, error)
	ListPublishedTo(ctx context.Context, dest domain.Destination) ([]*domain.ContentItem, error)
}

type LikeRepository interface {
	Add(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error
	Remove(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error
	Count(ctx context.Context, kind domain.ContentKind, contentID string) (int64, error)
	Exists(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) (bool, error)
}
