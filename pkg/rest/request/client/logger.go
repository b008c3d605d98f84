package client

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger is satisfied by *slog.Logger
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

type LogInterception struct {
	Transport http.RoundTripper
	logger    Logger
}

func (li *LogInterception) RoundTrip(req *http.Request) (*http.Response, error) {
	trip := li.Transport
	if trip == nil {
		trip = http.DefaultTransport
	}

	start := time.Now()
	li.logger.Debug("making request", slog.String("method", req.Method), slog.String("endpoint", req.URL.String()))
	resp, err := trip.RoundTrip(req)
	if err != nil {
		li.logger.Error("request failed",
			slog.String("reason", err.Error()),
			slog.String("method", req.Method),
			slog.String("endpoint", req.URL.String()),
		)
	} else {
		li.logger.Debug("request completed",
			slog.Int("status_code", resp.StatusCode),
			slog.String("endpoint", req.URL.String()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	return resp, err
}

func NewLogInterception(log Logger, base http.RoundTripper) http.RoundTripper {
	return &LogInterception{
		Transport: base,
		logger:    log,
	}
}
