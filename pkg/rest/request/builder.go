package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/ucsb-cs156/crudapi/pkg/rest"
)

type Builder struct {
	host      string
	url       string
	urlParams url.Values
	method    string
	header    http.Header
	body      io.Reader
	err       error
	ctx       context.Context
}

// NewBuilder starts a request against host, which may carry a scheme.
// Hosts without one are addressed over plain http.
func NewBuilder(host string) *Builder {
	return &Builder{
		host:      host,
		body:      nil,
		urlParams: make(url.Values),
		header:    make(http.Header),
		method:    http.MethodGet, // default method
		ctx:       context.TODO(),
	}
}

func (b *Builder) Build() (*http.Request, error) {
	if b.err != nil {
		return nil, fmt.Errorf("unable to build request: %w", b.err)
	}

	host := b.host
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	reqUrl := strings.TrimSuffix(host, "/") + b.url
	if len(b.urlParams) > 0 {
		reqUrl += "?" + b.urlParams.Encode()
	}

	req, err := http.NewRequestWithContext(b.ctx, b.method, reqUrl, b.body)
	if err != nil {
		return nil, fmt.Errorf("unable to build request: %w", err)
	}

	for key := range b.header {
		req.Header.Set(key, b.header.Get(key))
	}

	return req, nil
}

func (b *Builder) URL(url string) *Builder {
	b.url = url
	return b
}

func (b *Builder) WithURLParams(params any) *Builder {
	for key, vals := range UnMarshallParams(&params) {
		for _, v := range vals {
			b.urlParams.Add(key, v)
		}
	}
	return b
}

func (b *Builder) QueryParameter(key, val string) *Builder {
	b.urlParams.Add(key, val)
	return b
}

func (b *Builder) GET() *Builder {
	b.method = http.MethodGet
	return b
}

func (b *Builder) POST() *Builder {
	b.method = http.MethodPost
	return b
}

func (b *Builder) PUT() *Builder {
	b.method = http.MethodPut
	return b
}

func (b *Builder) DELETE() *Builder {
	b.method = http.MethodDelete
	return b
}

func (b *Builder) SetHeader(key, val string) *Builder {
	b.header.Set(key, val)
	return b
}

func (b *Builder) WithJSONContentType() *Builder {
	b.SetHeader("Content-Type", rest.ContentTypeJSON)
	return b
}

func (b *Builder) BearerToken(token string) *Builder {
	if token != "" {
		b.SetHeader("Authorization", "Bearer "+token)
	}
	return b
}

func (b *Builder) Body(body any) *Builder {
	data, err := json.Marshal(body)
	if err != nil {
		b.err = fmt.Errorf("unable to encode body: %w", err)
		return b
	}
	b.body = bytes.NewReader(data)
	b.WithJSONContentType()
	return b
}

func (b *Builder) CTX(ctx context.Context) *Builder {
	b.ctx = ctx
	return b
}
