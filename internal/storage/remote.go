package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrForbiddenToken is returned when the config service rejects the write
// credential (HTTP 403). Callers surface this separately from other upstream
// failures so an operator can tell a revoked token from an outage.
var ErrForbiddenToken = errors.New("config service rejected the API token")

// RemoteBackend reads and writes a hosted key-value config store over HTTP.
// Reads go through the public read endpoint; writes go through the
// authenticated item-patch endpoint and require the API token and store id.
//
// The service is eventually consistent: a successful Write may not be visible
// to an immediately following Read. Callers must not read back a value they
// just wrote within the same operation.
type RemoteBackend struct {
	readURL string
	apiURL  string
	storeID string
	token   string
	client  *http.Client
}

func NewRemoteBackend(readURL, apiURL, storeID, token string) *RemoteBackend {
	return &RemoteBackend{
		readURL: readURL,
		apiURL:  apiURL,
		storeID: storeID,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RemoteBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	if r.storeID == "" {
		return nil, fmt.Errorf("remote config store id missing")
	}
	u := fmt.Sprintf("%s/%s/item/%s", r.readURL, r.storeID, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		// key not set
		return nil, nil
	}
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("config service returned %d: %s", resp.StatusCode, string(b))
	}
	if len(bytes.TrimSpace(b)) == 0 || string(bytes.TrimSpace(b)) == "null" {
		return nil, nil
	}
	return json.RawMessage(b), nil
}

type patchItem struct {
	Operation string          `json:"operation"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
}

func (r *RemoteBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	if r.token == "" || r.storeID == "" {
		return fmt.Errorf("remote config credentials missing (token and store id are required for writes)")
	}
	body, err := json.Marshal(map[string][]patchItem{
		"items": {{Operation: "upsert", Key: key, Value: value}},
	})
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/v1/config/%s/items", r.apiURL, r.storeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.token)
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusForbidden {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrForbiddenToken, string(b))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("config service returned %d: %s", resp.StatusCode, string(b))
	}
	return nil
}
