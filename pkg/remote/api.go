package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kerbaras/perusahaan/pkg/data"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// API is a thin JSON client for the REST server.
type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Do sends body (when non-nil) as JSON and decodes the envelope's data into v
// (when non-nil). Non-2xx responses are mapped onto the data sentinels.
func (a *API) Do(ctx context.Context, method, path string, body, v any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", a.baseURL, path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, data.ErrConnection, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: %w: invalid response: %v", method, path, data.ErrConnection, err)
	}

	if err := statusError(resp.StatusCode, env); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if v == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

func statusError(code int, env envelope) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		invalid := &data.ValidationError{}
		if err := json.Unmarshal(env.Data, invalid); err != nil || invalid.Field == "" {
			invalid = &data.ValidationError{Reason: env.Message}
		}
		return invalid
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", data.ErrNotFound, env.Message)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", data.ErrDuplicate, env.Message)
	case code >= 500:
		return fmt.Errorf("%w: status %d: %s", data.ErrConnection, code, env.Message)
	default:
		return errors.New(env.Message)
	}
}
