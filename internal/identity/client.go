// Package identity is the booking service's client for the auth service.
// It is only used to enrich admin booking listings; callers must tolerate
// failure and degrade rather than propagate errors.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bookhub/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type usersEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Users []domain.SubjectSummary `json:"users"`
	} `json:"data"`
}

// FetchUsers lists all subjects known to the auth service, keyed by id. The
// caller's bearer token is forwarded; the endpoint is admin-gated there.
func (c *Client) FetchUsers(ctx context.Context, bearerToken string) (map[string]domain.SubjectSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/users", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var envelope usersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	users := make(map[string]domain.SubjectSummary, len(envelope.Data.Users))
	for _, u := range envelope.Data.Users {
		users[u.ID] = u
	}
	return users, nil
}
