package shell

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Opener hands a URL to something outside the portal window.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// SystemOpener opens URLs in the platform's default browser.
type SystemOpener struct{}

func (SystemOpener) Open(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// OpenAction is the answer to a new-window request.
type OpenAction string

// ActionDeny is the only answer: new windows never open in-app.
const ActionDeny OpenAction = "deny"

// WindowOpenHandler routes new-window requests to the external opener.
type WindowOpenHandler struct {
	opener Opener
	logger *zap.Logger
}

// NewWindowOpenHandler builds a handler over opener.
func NewWindowOpenHandler(opener Opener, logger *zap.Logger) *WindowOpenHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WindowOpenHandler{opener: opener, logger: logger}
}

// HandleOpen forwards target to the opener and always denies the in-app
// window. Only web and mail links are forwarded.
func (h *WindowOpenHandler) HandleOpen(ctx context.Context, target string) OpenAction {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		h.logger.Warn("ignoring malformed window request", zap.Error(err))
		return ActionDeny
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto":
	default:
		h.logger.Warn("ignoring window request", zap.String("scheme", u.Scheme))
		return ActionDeny
	}
	if err := h.opener.Open(ctx, u.String()); err != nil {
		h.logger.Error("external open failed", zap.String("url", u.String()), zap.Error(err))
	}
	return ActionDeny
}
