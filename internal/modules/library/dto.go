package library

import (
	"time"

	"creatorhub/internal/domain"
	"creatorhub/internal/modules/deletion"
)

// ContentView is one gallery entry. Deletion info is recomputed on every
// read; it is never stored.
type ContentView struct {
	ID           string                `json:"id"`
	Kind         string                `json:"kind"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	MediaURL     string                `json:"media_url,omitempty"`
	ThumbnailURL string                `json:"thumbnail_url,omitempty"`
	Status       string                `json:"status"`
	PublishedTo  []string              `json:"published_to"`
	Saved        bool                  `json:"saved"`
	Likes        int64                 `json:"likes"`
	Deletion     deletion.DeletionInfo `json:"deletion"`
	CreatedAt    time.Time             `json:"created_at"`
}

func destinationStrings(set domain.DestinationSet) []string {
	out := make([]string, 0, len(set))
	for _, d := range set {
		out = append(out, string(d))
	}
	return out
}
