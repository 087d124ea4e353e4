package publication

import (
	"context"
	"errors"
	"fmt"

	"creatorhub/internal/domain"
)

// Service is the only component that adds or removes publication
// destinations. It keeps published_to, status and publication_destination
// consistent in a single conditional record write per operation.
type Service struct {
	store   ContentStore
	sched   DeletionScheduler
	notifs  Notifier
	loggerf func(format string, args ...interface{})
}

func NewService(store ContentStore, sched DeletionScheduler, notifs Notifier, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{store: store, sched: sched, notifs: notifs, loggerf: loggerf}
}

func (s *Service) get(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	item, err := s.store.GetByID(ctx, kind, id)
	if errors.Is(err, domain.ErrContentNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if item.Terminal() {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *Service) write(ctx context.Context, item *domain.ContentItem, fields map[string]any) error {
	err := s.store.UpdateFields(ctx, item.Kind, item.ID, item.Revision, fields)
	if errors.Is(err, domain.ErrContentNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, domain.ErrStaleRevision) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("persist content: %w", err)
	}
	return nil
}

// Publish adds a destination to the item's published_to set. Idempotent on
// the set; always re-asserts the published status. Publishing an item that
// was pending deletion also clears its countdown — a published item is
// never simultaneously pending deletion. Owner only.
func (s *Service) Publish(ctx context.Context, kind domain.ContentKind, id string, dest domain.Destination, actorID int64) error {
	if _, err := domain.ParseDestination(string(dest)); err != nil {
		return ErrInvalidDestination
	}

	item, err := s.get(ctx, kind, id)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrForbidden
	}

	fields := map[string]any{
		"published_to":            item.PublishedTo.Add(dest),
		"status":                  domain.ContentPublished,
		"publication_destination": dest,
	}
	if item.Status == domain.ContentPendingDeletion {
		s.sched.ClearDeletionMarkers(item)
		fields["deleted_at"] = nil
		fields["auto_delete_at"] = nil
		fields["is_deleted_pending"] = false
	}

	if err := s.write(ctx, item, fields); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.NotifyContentPublished(ctx, item.OwnerID, kind, id, dest)
	}
	return nil
}

// Unpublish removes a destination. While destinations remain the item stays
// published; removing the last one hands the record to the deletion
// scheduler instead of leaving the status inconsistent. Removing a
// destination that is not in the set is a no-op. Owner only.
func (s *Service) Unpublish(ctx context.Context, kind domain.ContentKind, id string, dest domain.Destination, actorID int64) error {
	if _, err := domain.ParseDestination(string(dest)); err != nil {
		return ErrInvalidDestination
	}

	item, err := s.get(ctx, kind, id)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrForbidden
	}

	if !item.PublishedTo.Contains(dest) {
		return nil
	}

	remaining := item.PublishedTo.Remove(dest)
	fields := map[string]any{"published_to": remaining}

	if remaining.IsEmpty() {
		item.PublishedTo = remaining
		s.sched.EnterPendingDeletion(item)
		fields["status"] = item.Status
		fields["deleted_at"] = item.DeletedAt
		fields["auto_delete_at"] = item.AutoDeleteAt
		fields["is_deleted_pending"] = item.IsDeletedPending
	} else {
		fields["status"] = domain.ContentPublished
	}

	if err := s.write(ctx, item, fields); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.NotifyContentUnpublished(ctx, item.OwnerID, kind, id, dest)
		if remaining.IsEmpty() && item.AutoDeleteAt != nil {
			s.notifs.NotifyPendingDeletion(ctx, item.OwnerID, kind, id, *item.AutoDeleteAt)
		}
	}
	return nil
}
