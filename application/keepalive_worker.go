package application

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// KeepAliveWorker pings the bot's own public status URL so free hosting
// tiers do not put the process to sleep
type KeepAliveWorker struct {
	url    string
	client *http.Client
}

// NewKeepAliveWorker creates a pinger for url
func NewKeepAliveWorker(url string) *KeepAliveWorker {
	return &KeepAliveWorker{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Ping issues one GET and reports a non-2xx answer as an error
func (w *KeepAliveWorker) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ping returned status %d", resp.StatusCode)
	}
	return nil
}

// Run is the scheduled task; failures are logged and retried on the next tick
func (w *KeepAliveWorker) Run(ctx context.Context) {
	if err := w.Ping(ctx); err != nil {
		log.WithFields(log.Fields{
			"url":   w.url,
			"error": err,
		}).Warn("Keep-alive ping failed")
		return
	}
	log.WithField("url", w.url).Debug("Keep-alive ping ok")
}
