package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/gate"
	"github.com/spec-kit/exam-portal/internal/observability"
	"github.com/spec-kit/exam-portal/internal/routes"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

const maxRedirectHops = 5

// CredentialSource yields the credential snapshot a decision is made on.
type CredentialSource interface {
	Snapshot(ctx context.Context) domain.CredentialRecord
}

// Navigation is the result of resolving and gating one path.
type Navigation struct {
	Path    string                   `json:"path"`
	Outcome domain.NavigationOutcome `json:"decision"`
	Route   domain.RouteDescriptor   `json:"route"`
	Params  routes.Params            `json:"params,omitempty"`
}

// Navigator resolves paths against the route table and applies the gate.
type Navigator struct {
	table       *routes.Table
	credentials CredentialSource
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewNavigator builds a navigator. metrics may be nil.
func NewNavigator(table *routes.Table, credentials CredentialSource, metrics *observability.Metrics, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{table: table, credentials: credentials, metrics: metrics, logger: logger}
}

// Table exposes the route table the navigator resolves against.
func (n *Navigator) Table() *routes.Table {
	return n.table
}

// Navigate decides whether path may be rendered. Redirect-only table
// entries are followed first, so "/" lands on the login page's decision.
func (n *Navigator) Navigate(ctx context.Context, path string) (*Navigation, error) {
	path = routes.Normalize(path)

	target, params, ok := n.table.Lookup(path)
	if !ok {
		return nil, apperrors.NewNotFound("route", map[string]any{"path": path})
	}
	pattern := target.Path
	canonical := routes.Expand(target.Path, params)
	resolved := canonical
	for hops := 0; target.IsRedirect(); hops++ {
		if hops == maxRedirectHops {
			return nil, apperrors.NewInternalError(fmt.Errorf("redirect loop resolving %s", path))
		}
		resolved = routes.Normalize(target.RedirectTo)
		if target, params, ok = n.table.Lookup(resolved); !ok {
			return nil, apperrors.NewNotFound("route", map[string]any{"path": resolved})
		}
		resolved = routes.Expand(target.Path, params)
	}

	snap := n.credentials.Snapshot(ctx)
	outcome := gate.Decide(target, resolved, snap)
	if !outcome.IsRedirect() && resolved != canonical {
		outcome = domain.RedirectTo(resolved)
	}

	n.metrics.RecordNavigation(pattern, string(outcome.Kind), outcome.Location)
	n.logger.Debug("navigation",
		zap.String("path", path),
		zap.String("route", target.Name),
		zap.String("outcome", string(outcome.Kind)),
		zap.String("location", outcome.Location),
		zap.String("active_role", string(snap.ActiveRole)),
		zap.Bool("admin_token", snap.HasAdminToken()),
		zap.Bool("student_token", snap.HasStudentToken()))

	return &Navigation{Path: path, Outcome: outcome, Route: target, Params: params}, nil
}
