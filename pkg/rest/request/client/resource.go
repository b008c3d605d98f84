package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/ucsb-cs156/crudapi/pkg/rest/request"
)

// Record is an untyped entity as returned by the API.
type Record map[string]any

// Resource talks to one CRUD collection, e.g. /api/books.
type Resource struct {
	client   HTTPClient
	host     string
	base     string
	keyParam string
	token    string
}

func NewResource(c HTTPClient, host, base, keyParam, token string) *Resource {
	return &Resource{
		client:   c,
		host:     host,
		base:     base,
		keyParam: keyParam,
		token:    token,
	}
}

// StatusError carries a non 2xx answer from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (r *Resource) List(ctx context.Context) ([]Record, error) {
	req, err := r.builder(ctx).URL(r.base + "/all").GET().Build()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0)
	return records, r.do(req, &records)
}

func (r *Resource) Get(ctx context.Context, key string) (Record, error) {
	req, err := r.builder(ctx).URL(r.base).QueryParameter(r.keyParam, key).GET().Build()
	if err != nil {
		return nil, err
	}

	record := make(Record)
	return record, r.do(req, &record)
}

func (r *Resource) Create(ctx context.Context, attrs map[string]string) (Record, error) {
	b := r.builder(ctx).URL(r.base + "/post").POST()
	for k, v := range attrs {
		b.QueryParameter(k, v)
	}
	req, err := b.Build()
	if err != nil {
		return nil, err
	}

	record := make(Record)
	return record, r.do(req, &record)
}

func (r *Resource) Update(ctx context.Context, key string, body Record) (Record, error) {
	req, err := r.builder(ctx).URL(r.base).QueryParameter(r.keyParam, key).PUT().Body(body).Build()
	if err != nil {
		return nil, err
	}

	record := make(Record)
	return record, r.do(req, &record)
}

func (r *Resource) Delete(ctx context.Context, key string) (string, error) {
	req, err := r.builder(ctx).URL(r.base).QueryParameter(r.keyParam, key).DELETE().Build()
	if err != nil {
		return "", err
	}

	msg := struct {
		Message string `json:"message"`
	}{}
	return msg.Message, r.do(req, &msg)
}

func (r *Resource) builder(ctx context.Context) *request.Builder {
	return request.NewBuilder(r.host).CTX(ctx).BearerToken(r.token)
}

func (r *Resource) do(req *http.Request, dest any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unable to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(data)}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}
	return nil
}
