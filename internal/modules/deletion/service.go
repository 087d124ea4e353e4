package deletion

import (
	"context"
	"errors"
	"fmt"

	"creatorhub/internal/domain"
)

// Service exposes the owner-initiated deletion actions: save, restore,
// hard delete, plus the sweep used by the scheduled sweeper binary. It owns
// the saved/deleted_at/auto_delete_at/is_deleted_pending fields.
type Service struct {
	store   ContentStore
	likes   LikesRemover
	sched   *Scheduler
	notifs  Notifier
	loggerf func(format string, args ...interface{})
}

func NewService(store ContentStore, likes LikesRemover, sched *Scheduler, notifs Notifier, loggerf func(format string, args ...interface{})) *Service {
	if sched == nil {
		sched = NewScheduler(nil)
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{store: store, likes: likes, sched: sched, notifs: notifs, loggerf: loggerf}
}

// Scheduler exposes the countdown authority for read paths and for the
// publication service.
func (s *Service) Scheduler() *Scheduler {
	return s.sched
}

func (s *Service) get(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	item, err := s.store.GetByID(ctx, kind, id)
	if errors.Is(err, domain.ErrContentNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	// Terminal records are invisible to every operation.
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

// Save flags the item so it is never auto-deleted. The flag is sticky and
// does not clear the countdown timestamps; the status is normalized to
// draft and any remaining destinations are removed — a saved item is out
// of every gallery, and an empty published_to set must stay the single
// source of public visibility.
func (s *Service) Save(ctx context.Context, kind domain.ContentKind, id string, actorID int64) error {
	item, err := s.get(ctx, kind, id)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrForbidden
	}

	fields := map[string]any{
		"saved":              true,
		"status":             domain.ContentDraft,
		"is_deleted_pending": false,
	}
	if !item.PublishedTo.IsEmpty() {
		fields["published_to"] = domain.DestinationSet{}
	}
	if err := s.write(ctx, item, fields); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.NotifyContentSaved(ctx, item.OwnerID, kind, id)
	}
	return nil
}

// Restore is the hard reset back to a clean draft: no destinations, no
// deletion markers, saved flag cleared. Owner only.
func (s *Service) Restore(ctx context.Context, kind domain.ContentKind, id string, actorID int64) error {
	item, err := s.get(ctx, kind, id)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrForbidden
	}

	err = s.write(ctx, item, map[string]any{
		"saved":              false,
		"status":             domain.ContentDraft,
		"published_to":       domain.DestinationSet{},
		"deleted_at":         nil,
		"auto_delete_at":     nil,
		"is_deleted_pending": false,
	})
	if err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.NotifyContentRestored(ctx, item.OwnerID, kind, id)
	}
	return nil
}

// HardDelete is owner-only and irreversible: the record flips to its
// terminal status and dependent likes are removed.
func (s *Service) HardDelete(ctx context.Context, kind domain.ContentKind, id string, actorID int64) error {
	item, err := s.get(ctx, kind, id)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrForbidden
	}

	err = s.write(ctx, item, map[string]any{
		"status":             domain.ContentPermanentlyDeleted,
		"published_to":       domain.DestinationSet{},
		"is_deleted_pending": false,
	})
	if err != nil {
		return err
	}

	if s.likes != nil {
		if lerr := s.likes.DeleteForContent(ctx, kind, id); lerr != nil {
			s.loggerf("level=error msg=failed to delete likes for content kind=%s content_id=%s err=%v", kind, id, lerr)
		}
	}
	if s.notifs != nil {
		s.notifs.NotifyContentDeleted(ctx, item.OwnerID, kind, id)
	}
	return nil
}

// GetDeletionInfo computes the countdown view for one record. Read-only.
func (s *Service) GetDeletionInfo(ctx context.Context, kind domain.ContentKind, id string) (*DeletionInfo, error) {
	item, err := s.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	info := s.sched.GetDeletionInfo(item.Status, item.DeletedAt, item.AutoDeleteAt, item.Saved)
	return &info, nil
}

// SweepExpired finalizes every item whose grace period has run out. Each
// write is revision-conditioned, so an owner action racing the sweep wins;
// conflicted rows are skipped and picked up by a later run.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	due, err := s.store.ListSweepDue(ctx, s.sched.now())
	if err != nil {
		return 0, fmt.Errorf("list sweep candidates: %w", err)
	}

	swept := 0
	for _, item := range due {
		if !s.sched.SweepDue(item) {
			continue
		}
		err := s.store.UpdateFields(ctx, item.Kind, item.ID, item.Revision, map[string]any{
			"status":             domain.ContentPermanentlyDeleted,
			"is_deleted_pending": false,
		})
		if errors.Is(err, domain.ErrStaleRevision) || errors.Is(err, domain.ErrContentNotFound) {
			s.loggerf("level=info msg=sweep skipped, record changed underneath kind=%s content_id=%s", item.Kind, item.ID)
			continue
		}
		if err != nil {
			return swept, fmt.Errorf("sweep content %s/%s: %w", item.Kind, item.ID, err)
		}
		swept++
	}
	return swept, nil
}
