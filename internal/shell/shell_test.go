package shell

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/exam-portal/internal/config"
)

type recordingOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (r *recordingOpener) Open(_ context.Context, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, target)
	return r.err
}

func (r *recordingOpener) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.opened...)
}

func TestWindowOptions(t *testing.T) {
	opts := DefaultWindowOptions()
	assert.Equal(t, 1200, opts.Width)
	assert.Equal(t, 800, opts.Height)
	assert.Equal(t, 800, opts.MinWidth)
	assert.Equal(t, 600, opts.MinHeight)
	assert.True(t, opts.ShowWhenReady)
	assert.False(t, opts.NodeIntegration)

	small := WindowOptions{Width: 300, Height: 200}.Normalize()
	assert.Equal(t, 800, small.Width)
	assert.Equal(t, 600, small.Height)

	fromCfg := WindowOptionsFromConfig(config.ShellConfig{Width: 1600, MinHeight: 900})
	assert.Equal(t, 1600, fromCfg.Width)
	assert.Equal(t, 900, fromCfg.Height)
}

func TestNavigationPolicy(t *testing.T) {
	p := NewNavigationPolicy("http://localhost:5173", "http://127.0.0.1:5174", "not a url")

	allowed := []string{
		"http://localhost:5173/",
		"http://localhost:5173/student/dashboard?x=1",
		"HTTP://LOCALHOST:5173/login",
		"file:///opt/portal/index.html",
		"http://127.0.0.1:5174/dashboard",
	}
	for _, u := range allowed {
		assert.True(t, p.AllowNavigation(u), u)
	}

	denied := []string{
		"https://localhost:5173/",
		"http://localhost:5174/",
		"http://evil.example.com/",
		"https://example.com/?next=http://localhost:5173",
		"javascript:alert(1)",
		"",
		"%zz",
	}
	for _, u := range denied {
		assert.False(t, p.AllowNavigation(u), u)
	}
}

func TestWindowOpenHandlerAlwaysDenies(t *testing.T) {
	opener := &recordingOpener{}
	h := NewWindowOpenHandler(opener, nil)
	ctx := context.Background()

	assert.Equal(t, ActionDeny, h.HandleOpen(ctx, "https://docs.example.com/help"))
	assert.Equal(t, ActionDeny, h.HandleOpen(ctx, "file:///etc/passwd"))
	assert.Equal(t, ActionDeny, h.HandleOpen(ctx, "%zz"))

	opener.err = errors.New("no browser")
	assert.Equal(t, ActionDeny, h.HandleOpen(ctx, "mailto:admin@example.com"))

	assert.Equal(t, []string{"https://docs.example.com/help", "mailto:admin@example.com"}, opener.calls())
}

func TestLauncherWaitsForReadiness(t *testing.T) {
	var probes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if probes.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	opener := &recordingOpener{}
	l := NewLauncher("http://localhost:5173", srv.URL, DefaultWindowOptions(), opener, nil,
		WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Show(ctx))
	assert.GreaterOrEqual(t, probes.Load(), int32(3))
	assert.Equal(t, []string{"http://localhost:5173"}, opener.calls())

	assert.ErrorIs(t, l.Show(ctx), ErrAlreadyShown)
	assert.Len(t, opener.calls(), 1)
}

func TestLauncherGivesUpWithContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	opener := &recordingOpener{}
	l := NewLauncher("http://localhost:5173", srv.URL, DefaultWindowOptions(), opener, nil,
		WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := l.Show(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, opener.calls())
}

func TestLauncherConcurrentShowOpensOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	opener := &recordingOpener{}
	l := NewLauncher("http://localhost:5173", srv.URL, DefaultWindowOptions(), opener, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Show(context.Background())
		}()
	}
	wg.Wait()
	assert.Len(t, opener.calls(), 1)
}
