package deletion

import (
	"math"
	"time"

	"creatorhub/internal/domain"
)

// Scheduler is the single authority for entering and leaving the
// pending-deletion countdown. The clock is injected so countdown math is
// deterministic under test.
type Scheduler struct {
	now func() time.Time
}

func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// EnterPendingDeletion stamps the grace-period countdown on an item whose
// published_to set just became empty. A saved item still gets the timestamps
// but is never presented as pending.
func (s *Scheduler) EnterPendingDeletion(item *domain.ContentItem) {
	t := s.now().UTC()
	expires := t.Add(domain.DeletionGracePeriod)

	item.Status = domain.ContentPendingDeletion
	item.DeletedAt = &t
	item.AutoDeleteAt = &expires
	item.IsDeletedPending = !item.Saved
}

// ClearDeletionMarkers removes the countdown. A published item is never
// simultaneously pending deletion.
func (s *Scheduler) ClearDeletionMarkers(item *domain.ContentItem) {
	item.DeletedAt = nil
	item.AutoDeleteAt = nil
	item.IsDeletedPending = false
}

// DaysRemaining returns the whole days left before auto-deletion, ceiling
// semantics, never negative. Returns nil when the item is not pending.
func (s *Scheduler) DaysRemaining(autoDeleteAt *time.Time, isPending bool) *int {
	if !isPending || autoDeleteAt == nil {
		return nil
	}
	days := int(math.Ceil(autoDeleteAt.Sub(s.now()).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return &days
}

// SweepDue reports whether the external sweep may finalize the item:
// pending deletion, not saved, grace period expired.
func (s *Scheduler) SweepDue(item *domain.ContentItem) bool {
	return item.Status == domain.ContentPendingDeletion &&
		!item.Saved &&
		item.AutoDeleteAt != nil &&
		!s.now().Before(*item.AutoDeleteAt)
}

// DeletionInfo is the read-model the presentation layer renders countdowns from.
type DeletionInfo struct {
	IsDeletedPending  bool `json:"is_deleted_pending"`
	DaysUntilDeletion *int `json:"days_until_deletion,omitempty"`
}

// GetDeletionInfo derives the countdown view from stored fields. Pure, no
// I/O; recomputed on every read. A saved item is never reported as pending,
// whatever its stored status, and the countdown is only meaningful while
// deleted_at is set.
func (s *Scheduler) GetDeletionInfo(status domain.ContentStatus, deletedAt, autoDeleteAt *time.Time, saved bool) DeletionInfo {
	pending := status == domain.ContentPendingDeletion && !saved && deletedAt != nil
	return DeletionInfo{
		IsDeletedPending:  pending,
		DaysUntilDeletion: s.DaysRemaining(autoDeleteAt, pending),
	}
}
