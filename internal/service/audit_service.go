package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/events"
)

// AuditService logs session lifecycle events. Token values never reach it.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventAdminLoggedIn, a.handleLogin)
	a.dispatcher.Subscribe(events.EventStudentLoggedIn, a.handleLogin)
	a.dispatcher.Subscribe(events.EventLoggedOut, a.handleLogout)
	a.dispatcher.Subscribe(events.EventCredentialsRejected, a.handleRejected)
}

func (a *AuditService) handleLogin(_ context.Context, event events.Event) error {
	fields := a.base(event)
	if p, ok := event.Payload.(events.LoginPayload); ok {
		fields = append(fields, zap.String("identity", p.Identity), zap.String("name", p.Name))
	}
	a.logger.Info("LoggedIn", fields...)
	return nil
}

func (a *AuditService) handleLogout(_ context.Context, event events.Event) error {
	fields := a.base(event)
	if p, ok := event.Payload.(events.LogoutPayload); ok {
		cleared := make([]string, 0, len(p.Cleared))
		for _, r := range p.Cleared {
			cleared = append(cleared, string(r))
		}
		fields = append(fields, zap.Strings("cleared", cleared))
	}
	a.logger.Info("LoggedOut", fields...)
	return nil
}

func (a *AuditService) handleRejected(_ context.Context, event events.Event) error {
	fields := a.base(event)
	if p, ok := event.Payload.(events.RejectedPayload); ok {
		fields = append(fields, zap.String("redirect_to", p.RedirectTo))
	}
	a.logger.Warn("CredentialsRejected", fields...)
	return nil
}

func (a *AuditService) base(event events.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("role", string(event.Role)),
		zap.Time("at", event.Timestamp),
	}
}
