package domain

import (
	"errors"
	"fmt"
	"time"
)

// DeletionGracePeriod is the window between a content item losing its last
// publication destination and becoming eligible for permanent deletion.
const DeletionGracePeriod = 3 * 24 * time.Hour

type ContentStatus string

const (
	ContentDraft              ContentStatus = "draft"
	ContentPublished          ContentStatus = "published"
	ContentPendingDeletion    ContentStatus = "pending_deletion"
	ContentArchived           ContentStatus = "archived"
	ContentPermanentlyDeleted ContentStatus = "permanently_deleted"
)

// ContentKind selects which of the three parallel content tables a record
// lives in. The lifecycle rules are identical across kinds.
type ContentKind string

const (
	KindMedia       ContentKind = "media"
	KindPortfolio   ContentKind = "portfolio"
	KindMasterclass ContentKind = "masterclass"
)

func ParseContentKind(s string) (ContentKind, error) {
	switch ContentKind(s) {
	case KindMedia, KindPortfolio, KindMasterclass:
		return ContentKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContentKind, s)
}

// Destination is a publication surface a content item can be visible on.
type Destination string

const (
	DestinationMedia       Destination = "media"
	DestinationPortfolio   Destination = "portfolio"
	DestinationMasterclass Destination = "masterclass"
)

func ParseDestination(s string) (Destination, error) {
	switch Destination(s) {
	case DestinationMedia, DestinationPortfolio, DestinationMasterclass:
		return Destination(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDestination, s)
}

// DestinationSet holds the destinations an item is currently published to.
// Values are unique; order carries no meaning.
type DestinationSet []Destination

func (s DestinationSet) Contains(d Destination) bool {
	for _, v := range s {
		if v == d {
			return true
		}
	}
	return false
}

// Add returns the set with d included. Adding an existing destination is a no-op.
func (s DestinationSet) Add(d Destination) DestinationSet {
	if s.Contains(d) {
		return s
	}
	return append(s.clone(), d)
}

// Remove returns the set without d.
func (s DestinationSet) Remove(d Destination) DestinationSet {
	out := make(DestinationSet, 0, len(s))
	for _, v := range s {
		if v != d {
			out = append(out, v)
		}
	}
	return out
}

func (s DestinationSet) IsEmpty() bool { return len(s) == 0 }

func (s DestinationSet) clone() DestinationSet {
	out := make(DestinationSet, len(s))
	copy(out, s)
	return out
}

var (
	ErrContentNotFound    = errors.New("content not found")
	ErrInvalidContentKind = errors.New("invalid content kind")
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrStaleRevision means a conditional write lost a race with a
	// concurrent writer. The operation is not retried internally.
	ErrStaleRevision = errors.New("content revision is stale")
)

// ContentItem is one logical piece of creator content. It lives in exactly
// one of three tables selected by Kind; published_to (not status) is the
// authoritative source of public visibility.
type ContentItem struct {
	ID          string      `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Kind        ContentKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`

	MediaURL     string `json:"media_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// PriceCents is set on masterclass items offered for enrollment;
	// zero means free.
	PriceCents int64  `json:"price_cents,omitempty"`
	Currency   string `json:"currency,omitempty"`

	Status      ContentStatus  `json:"status"`
	PublishedTo DestinationSet `json:"published_to"`
	// PublicationDestination is the most recently targeted destination.
	// Informational only, last-write-wins.
	PublicationDestination Destination `json:"publication_destination,omitempty"`

	// Saved is sticky: once set, the item is never auto-deleted. It does not
	// by itself clear DeletedAt/AutoDeleteAt; only Restore does.
	Saved            bool       `json:"saved"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	AutoDeleteAt     *time.Time `json:"auto_delete_at,omitempty"`
	IsDeletedPending bool       `json:"is_deleted_pending"`

	// Revision guards every write: updates are conditioned on the revision
	// read, so concurrent writers cannot silently overwrite each other.
	Revision  int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the item can transition no further.
func (c *ContentItem) Terminal() bool {
	return c.Status == ContentPermanentlyDeleted
}
