package shell

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultPollInterval = 200 * time.Millisecond

// ErrAlreadyShown is returned by Show after the window was opened.
var ErrAlreadyShown = errors.New("window already shown")

// Launcher opens the portal UI exactly once, after it is ready to serve.
type Launcher struct {
	appURL   string
	readyURL string
	window   WindowOptions
	opener   Opener
	client   *http.Client
	interval time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	shown bool
}

// LauncherOption customises a Launcher.
type LauncherOption func(*Launcher)

// WithPollInterval sets how often readiness is probed.
func WithPollInterval(d time.Duration) LauncherOption {
	return func(l *Launcher) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithProbeClient replaces the readiness probe client.
func WithProbeClient(c *http.Client) LauncherOption {
	return func(l *Launcher) {
		if c != nil {
			l.client = c
		}
	}
}

// NewLauncher builds a launcher that opens appURL once readyURL answers 2xx.
func NewLauncher(appURL, readyURL string, window WindowOptions, opener Opener, logger *zap.Logger, opts ...LauncherOption) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Launcher{
		appURL:   appURL,
		readyURL: readyURL,
		window:   window.Normalize(),
		opener:   opener,
		client:   &http.Client{Timeout: 2 * time.Second},
		interval: defaultPollInterval,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Window returns the geometry the UI is opened with.
func (l *Launcher) Window() WindowOptions {
	return l.window
}

// Show waits for readiness, bounded by ctx, then opens the window. Later
// calls return ErrAlreadyShown without opening anything.
func (l *Launcher) Show(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.shown {
		return ErrAlreadyShown
	}

	if err := l.waitReady(ctx); err != nil {
		return err
	}
	if err := l.opener.Open(ctx, l.appURL); err != nil {
		return err
	}
	l.shown = true
	l.logger.Info("portal window shown",
		zap.String("url", l.appURL),
		zap.Int("width", l.window.Width),
		zap.Int("height", l.window.Height))
	return nil
}

func (l *Launcher) waitReady(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		if l.probe(ctx) {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("portal not ready: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *Launcher) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.readyURL, nil)
	if err != nil {
		return false
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Debug("readiness probe failed", zap.Error(err))
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
