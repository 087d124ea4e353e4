package library

import (
	"context"

	"creatorhub/internal/domain"
	"creatorhub/internal/modules/deletion"
)

// Service is the read surface the dashboard and public galleries use. It
// never mutates lifecycle fields.
type Service struct {
	contents ContentLister
	likes    LikeRepository
	sched    *deletion.Scheduler
}

func NewService(contents ContentLister, likes LikeRepository, sched *deletion.Scheduler) *Service {
	if sched == nil {
		sched = deletion.NewScheduler(nil)
	}
	return &Service{contents: contents, likes: likes, sched: sched}
}

// ListMine returns the owner's items of one kind, countdowns included.
func (s *Service) ListMine(ctx context.Context, kind domain.ContentKind, ownerID int64) ([]ContentView, error) {
	items, err := s.contents.ListByOwner(ctx, kind, ownerID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, items)
}

// ListDestination returns everything currently visible on one surface.
func (s *Service) ListDestination(ctx context.Context, dest domain.Destination) ([]ContentView, error) {
	items, err := s.contents.ListPublishedTo(ctx, dest)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, items)
}

func (s *Service) Like(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error {
	already, err := s.likes.Exists(ctx, userID, kind, contentID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}
	return s.likes.Add(ctx, userID, kind, contentID)
}

func (s *Service) Unlike(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error {
	return s.likes.Remove(ctx, userID, kind, contentID)
}

func (s *Service) toViews(ctx context.Context, items []*domain.ContentItem) ([]ContentView, error) {
	out := make([]ContentView, 0, len(items))
	for _, item := range items {
		var likeCount int64
		if s.likes != nil {
			n, err := s.likes.Count(ctx, item.Kind, item.ID)
			if err != nil {
				return nil, err
			}
			likeCount = n
		}
		out = append(out, ContentView{
			ID:           item.ID,
			Kind:         string(item.Kind),
			Title:        item.Title,
			Description:  item.Description,
			MediaURL:     item.MediaURL,
			ThumbnailURL: item.ThumbnailURL,
			Status:       string(item.Status),
			PublishedTo:  destinationStrings(item.PublishedTo),
			Saved:        item.Saved,
			Likes:        likeCount,
			Deletion:     s.sched.GetDeletionInfo(item.Status, item.DeletedAt, item.AutoDeleteAt, item.Saved),
			CreatedAt:    item.CreatedAt,
		})
	}
	return out, nil
}
