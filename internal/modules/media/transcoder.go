package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"creatorhub/internal/domain"
)

// HTTPTranscoder submits jobs to the external media-processing service.
// Thumbnails and renditions come back out of band; the content record is
// keyed by ID so the service can attach results later.
type HTTPTranscoder struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTranscoder(baseURL string) *HTTPTranscoder {
	return &HTTPTranscoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *HTTPTranscoder) EnqueueTranscode(ctx context.Context, kind domain.ContentKind, contentID, objectKey string) error {
	payload := map[string]string{
		"kind":       string(kind),
		"content_id": contentID,
		"object_key": objectKey,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/jobs", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("transcoder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("transcoder rejected job: status %d", resp.StatusCode)
	}
	return nil
}
