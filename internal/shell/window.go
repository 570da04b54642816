// Package shell is the desktop shell around the portal: window geometry,
// the in-app navigation policy, external link handling and a launcher that
// opens the UI once the portal answers.
package shell

import "github.com/spec-kit/exam-portal/internal/config"

const (
	DefaultWidth     = 1200
	DefaultHeight    = 800
	DefaultMinWidth  = 800
	DefaultMinHeight = 600
)

// WindowOptions describes the main window.
type WindowOptions struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MinWidth  int `json:"minWidth"`
	MinHeight int `json:"minHeight"`
	// ShowWhenReady keeps the window hidden until the UI has loaded.
	ShowWhenReady bool `json:"showWhenReady"`
	// Renderer isolation: the UI gets no direct access to host APIs.
	NodeIntegration  bool `json:"nodeIntegration"`
	ContextIsolation bool `json:"contextIsolation"`
}

// DefaultWindowOptions returns a 1200x800 window, minimum 800x600.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		MinWidth:         DefaultMinWidth,
		MinHeight:        DefaultMinHeight,
		ShowWhenReady:    true,
		ContextIsolation: true,
	}
}

// WindowOptionsFromConfig applies configured sizes over the defaults.
func WindowOptionsFromConfig(cfg config.ShellConfig) WindowOptions {
	opts := DefaultWindowOptions()
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	if cfg.MinWidth > 0 {
		opts.MinWidth = cfg.MinWidth
	}
	if cfg.MinHeight > 0 {
		opts.MinHeight = cfg.MinHeight
	}
	return opts.Normalize()
}

// Normalize raises the size to at least the minimum size.
func (o WindowOptions) Normalize() WindowOptions {
	if o.MinWidth <= 0 {
		o.MinWidth = DefaultMinWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	o.Width = max(o.Width, o.MinWidth)
	o.Height = max(o.Height, o.MinHeight)
	return o
}
