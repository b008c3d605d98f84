package client

import (
	"fmt"
	"io"
	"net/http"
)

type retryClientOption func(c *Retry) error

type Retry struct {
	client     HTTPClient
	Retryable  func(*http.Response, error) bool
	MaxRetries int
}

func NewRetryClient(baseClient HTTPClient, opts ...retryClientOption) (HTTPClient, error) {
	client := &Retry{
		client:     baseClient,
		MaxRetries: 3,
		Retryable: func(resp *http.Response, err error) bool {
			return false
		},
	}

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, fmt.Errorf("could not create client: %w", err)
		}
	}

	return client, nil
}

// RetryOnServerError retries transport failures and 5xx responses.
func RetryOnServerError(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode >= http.StatusInternalServerError
}

// Do only retries requests whose body can be replayed.
func (c *Retry) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	for count := 0; c.Retryable(resp, err) && count < c.MaxRetries; count++ {
		if req.Body != nil && req.Body != http.NoBody {
			if req.GetBody == nil {
				break
			}
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				break
			}
			req.Body = body
		}
		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		resp, err = c.client.Do(req)
	}

	return resp, err
}
