package apiclient

import (
	"context"
	"net/http"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// DashboardAPI covers /dashboard. All answers are free-form statistics maps.
type DashboardAPI struct{ c *Client }

func (c *Client) Dashboard() DashboardAPI { return DashboardAPI{c} }

func (d DashboardAPI) Stats(ctx context.Context) (domain.Stats, error) {
	return d.get(ctx, "/dashboard/stats")
}

func (d DashboardAPI) UserStats(ctx context.Context) (domain.Stats, error) {
	return d.get(ctx, "/dashboard/user-stats")
}

func (d DashboardAPI) ExamStats(ctx context.Context) (domain.Stats, error) {
	return d.get(ctx, "/dashboard/exam-stats")
}

func (d DashboardAPI) QuestionStats(ctx context.Context) (domain.Stats, error) {
	return d.get(ctx, "/dashboard/question-stats")
}

func (d DashboardAPI) RecentActivities(ctx context.Context) (domain.Stats, error) {
	return d.get(ctx, "/dashboard/recent-activities")
}

func (d DashboardAPI) get(ctx context.Context, path string) (domain.Stats, error) {
	return call[domain.Stats](ctx, d.c, http.MethodGet, path, nil, nil)
}
