package notify

import (
	"context"
	"time"

	"creatorhub/internal/domain"
)

// Event is what the dashboard receives over the websocket.
type Event struct {
	Type         string    `json:"type"`
	Kind         string    `json:"kind"`
	ContentID    string    `json:"content_id"`
	Destination  string    `json:"destination,omitempty"`
	AutoDeleteAt time.Time `json:"auto_delete_at,omitempty"`
	At           time.Time `json:"at"`
}

// Service pushes lifecycle events to connected owners. Delivery is best
// effort — a missed event never affects the state machine.
type Service struct {
	hub     *Hub
	loggerf func(format string, args ...interface{})
}

func NewService(hub *Hub, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{hub: hub, loggerf: loggerf}
}

func (s *Service) send(ownerID int64, ev Event) {
	ev.At = time.Now().UTC()
	if !s.hub.SendToUser(ownerID, ev) {
		s.loggerf("level=debug msg=owner offline, event dropped type=%s content_id=%s", ev.Type, ev.ContentID)
	}
}

func (s *Service) NotifyContentPublished(_ context.Context, ownerID int64, kind domain.ContentKind, contentID string, dest domain.Destination) {
	s.send(ownerID, Event{Type: "content.published", Kind: string(kind), ContentID: contentID, Destination: string(dest)})
}

func (s *Service) NotifyContentUnpublished(_ context.Context, ownerID int64, kind domain.ContentKind, contentID string, dest domain.Destination) {
	s.send(ownerID, Event{Type: "content.unpublished", Kind: string(kind), ContentID: contentID, Destination: string(dest)})
}

func (s *Service) NotifyPendingDeletion(_ context.Context, ownerID int64, kind domain.ContentKind, contentID string, autoDeleteAt time.Time) {
	s.send(ownerID, Event{Type: "content.pending_deletion", Kind: string(kind), ContentID: contentID, AutoDeleteAt: autoDeleteAt})
}

func (s *Service) NotifyContentSaved(_ context.Context, ownerID int64, kind domain.ContentKind, contentID string) {
	s.send(ownerID, Event{Type: "content.saved", Kind: string(kind), ContentID: contentID})
}

func (s *Service) NotifyContentRestored(_ context.Context, ownerID int64, kind domain.ContentKind, contentID string) {
	s.send(ownerID, Event{Type: "content.restored", Kind: string(kind), ContentID: contentID})
}

func (s *Service) NotifyContentDeleted(_ context.Context, ownerID int64, kind domain.ContentKind, contentID string) {
	s.send(ownerID, Event{Type: "content.deleted", Kind: string(kind), ContentID: contentID})
}
