package domain

import "time"

// Like is a dependent interaction record. Likes are removed together with
// their content when the owner hard-deletes it.
type Like struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	ContentID string      `json:"content_id"`
	Kind      ContentKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}
