package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Resource is the CRUD family for one endpoint with row type T.
type Resource[T any] struct {
	c  *Client
	ep Endpoint
}

func NewResource[T any](c *Client, ep Endpoint) *Resource[T] {
	return &Resource[T]{c: c, ep: ep}
}

func (r *Resource[T]) Endpoint() Endpoint { return r.ep }

// List fetches the collection with the endpoint's non-empty filters. Both a
// bare JSON array and a paginated {"results": [...]} body are accepted.
func (r *Resource[T]) List(ctx context.Context, f Filters) ([]T, error) {
	var raw json.RawMessage
	cl := call{op: OpFetch, endpoint: r.ep, method: http.MethodGet, path: r.ep.Path, query: Query(r.ep.FilterKeys, f)}
	if err := r.c.do(ctx, cl, &raw); err != nil {
		return nil, err
	}

	rows := []T{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return rows, nil
	}
	if raw[0] == '{' {
		var page struct {
			Results []T `json:"results"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, r.c.requestError(cl, http.StatusOK, "", fmt.Errorf("decode %s: %w", r.ep.Plural, err))
		}
		if page.Results != nil {
			rows = page.Results
		}
		return rows, nil
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, r.c.requestError(cl, http.StatusOK, "", fmt.Errorf("decode %s: %w", r.ep.Plural, err))
	}
	return rows, nil
}

// Create POSTs draft and returns the stored record.
func (r *Resource[T]) Create(ctx context.Context, draft T) (T, error) {
	var out T
	err := r.c.do(ctx, call{op: OpCreate, endpoint: r.ep, method: http.MethodPost, path: r.ep.Path, body: draft}, &out)
	return out, err
}

// Update PUTs draft to the record id.
func (r *Resource[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	var out T
	err := r.c.do(ctx, call{op: OpUpdate, endpoint: r.ep, method: http.MethodPut, path: r.ep.ItemPath(id), body: draft}, &out)
	return out, err
}

func (r *Resource[T]) Remove(ctx context.Context, id string) error {
	return r.c.do(ctx, call{op: OpDelete, endpoint: r.ep, method: http.MethodDelete, path: r.ep.ItemPath(id)}, nil)
}

// Export downloads <path>export/<format>/ and names the blob after the
// endpoint and today's date.
func (r *Resource[T]) Export(ctx context.Context, f Format) (Blob, error) {
	blob, err := r.c.download(ctx, call{
		op: OpExport, endpoint: r.ep, method: http.MethodGet,
		path: r.ep.Path + "export/" + string(f) + "/", arg: string(f),
	})
	if err != nil {
		return Blob{}, err
	}
	blob.Filename = ExportFilename(r.ep.Name, f, r.c.now())
	return blob, nil
}

// Action POSTs payload to <path><id>/<suffix>/ and decodes the reply into
// out (nil to discard). op picks the failure banner.
func (r *Resource[T]) Action(ctx context.Context, op Op, id, suffix string, payload, out any) error {
	return r.c.do(ctx, call{
		op: op, endpoint: r.ep, method: http.MethodPost,
		path: r.ep.ItemPath(id) + suffix + "/", body: payload,
	}, out)
}

// get fetches a JSON document under the endpoint (analytics, metrics).
func (r *Resource[T]) get(ctx context.Context, op Op, path string, out any) error {
	return r.c.do(ctx, call{op: op, endpoint: r.ep, method: http.MethodGet, path: path}, out)
}
