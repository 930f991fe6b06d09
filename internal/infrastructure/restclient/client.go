package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/tr4cking/admin-api/pkg/apperror"
)

// Factory builds per-resource clients against the remote REST service.
// Requests route through the session in the context, so backend cookies and
// the anti-forgery token follow the clerk; without a context session they
// fall back to a plain client with neither.
type Factory struct {
	baseURL string
	bare    *http.Client
}

// NewFactory creates a factory. Requests carry the session cookies from the
// context session and an X-CSRFToken header on mutating verbs, matching
// what the backend's CSRF middleware expects.
func NewFactory(baseURL string, timeout time.Duration) *Factory {
	return &Factory{
		baseURL: strings.TrimRight(baseURL, "/"),
		bare:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend base URL.
func (f *Factory) BaseURL() string {
	return f.baseURL
}

// Resource returns a client for one backend collection, e.g. "encomiendas".
func (f *Factory) Resource(name string) *Resource {
	return &Resource{factory: f, name: name}
}

// Resource issues list/get/create/update/patch/delete calls against
// /api/<name>/ with the trailing slashes the backend routing requires.
type Resource struct {
	factory *Factory
	name    string
}

func (r *Resource) collectionPath() string {
	return fmt.Sprintf("%s/api/%s/", r.factory.baseURL, r.name)
}

func (r *Resource) memberPath(id int64) string {
	return fmt.Sprintf("%s/api/%s/%d/", r.factory.baseURL, r.name, id)
}

// List fetches the full collection into out.
func (r *Resource) List(ctx context.Context, out any) error {
	return r.factory.do(ctx, http.MethodGet, r.collectionPath(), nil, out)
}

// Get fetches one record by id into out.
func (r *Resource) Get(ctx context.Context, id int64, out any) error {
	return r.factory.do(ctx, http.MethodGet, r.memberPath(id), nil, out)
}

// GetPath fetches a non-numeric member path such as users/current/.
func (r *Resource) GetPath(ctx context.Context, suffix string, out any) error {
	url := fmt.Sprintf("%s/api/%s/%s/", r.factory.baseURL, r.name, strings.Trim(suffix, "/"))
	return r.factory.do(ctx, http.MethodGet, url, nil, out)
}

// Create posts body to the collection and decodes the created record.
func (r *Resource) Create(ctx context.Context, body, out any) error {
	return r.factory.do(ctx, http.MethodPost, r.collectionPath(), body, out)
}

// Post posts body to a sub-path of the collection, e.g. auth/logout/.
func (r *Resource) Post(ctx context.Context, suffix string, body, out any) error {
	url := fmt.Sprintf("%s/api/%s/%s/", r.factory.baseURL, r.name, strings.Trim(suffix, "/"))
	return r.factory.do(ctx, http.MethodPost, url, body, out)
}

// Update replaces a record with a full PUT.
func (r *Resource) Update(ctx context.Context, id int64, body, out any) error {
	return r.factory.do(ctx, http.MethodPut, r.memberPath(id), body, out)
}

// Patch partially updates a record.
func (r *Resource) Patch(ctx context.Context, id int64, body, out any) error {
	return r.factory.do(ctx, http.MethodPatch, r.memberPath(id), body, out)
}

// Delete removes a record.
func (r *Resource) Delete(ctx context.Context, id int64) error {
	return r.factory.do(ctx, http.MethodDelete, r.memberPath(id), nil, nil)
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func (f *Factory) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := f.bare
	if session, ok := SessionFrom(ctx); ok {
		client = session.Client
		if isMutating(method) {
			if token := session.CSRFToken(f.baseURL); token != "" {
				req.Header.Set("X-CSRFToken", token)
			}
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return apperror.NewAppError(http.StatusBadGateway, fmt.Sprintf("backend request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError flattens a backend error body into an AppError. Validation
// bodies arrive as {"field": ["msg", ...]} objects; those become field
// errors joined into one newline-separated message, as the original console
// showed them.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
		return apperror.NewBackendError(resp.StatusCode, detail.Detail, nil)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		var fieldErrors []apperror.FieldError
		var lines []string
		for _, name := range names {
			var messages []string
			if err := json.Unmarshal(fields[name], &messages); err != nil {
				var single string
				if err := json.Unmarshal(fields[name], &single); err != nil {
					continue
				}
				messages = []string{single}
			}
			for _, msg := range messages {
				fieldErrors = append(fieldErrors, apperror.FieldError{Field: name, Message: msg})
				lines = append(lines, name+": "+msg)
			}
		}
		if len(fieldErrors) > 0 {
			return apperror.NewBackendError(resp.StatusCode, strings.Join(lines, "\n"), fieldErrors)
		}
	}

	message := strings.TrimSpace(string(raw))
	if len(message) > 200 || strings.HasPrefix(message, "<") {
		message = ""
	}
	return apperror.NewBackendError(resp.StatusCode, message, nil)
}
