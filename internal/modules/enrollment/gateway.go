package enrollment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPGateway is a thin client for one external payment provider. The
// provider protocol is not our concern; we post a charge, we read back a
// reference or an error.
type HTTPGateway struct {
	name    string
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGateway(name, baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *HTTPGateway) Name() string { return g.name }

type chargePayload struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
}

type chargeReply struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (g *HTTPGateway) Charge(ctx context.Context, req ChargeRequest) (string, error) {
	payload := chargePayload{
		Amount:      req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
		Reference:   fmt.Sprintf("enroll:%d:%s", req.UserID, req.MasterclassID),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway %s unreachable: %w", g.name, err)
	}
	defer resp.Body.Close()

	var reply chargeReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("gateway %s: malformed response: %w", g.name, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if reply.Error != "" {
			return "", fmt.Errorf("gateway %s: %s", g.name, reply.Error)
		}
		return "", fmt.Errorf("gateway %s: status %d", g.name, resp.StatusCode)
	}
	return reply.ID, nil
}
