package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/exam-portal/internal/config"
	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/gate"
	"github.com/spec-kit/exam-portal/internal/routes"
	"github.com/spec-kit/exam-portal/internal/session"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.BackendConfig{BaseURL: srv.URL, APIPrefix: "/api", TimeoutSeconds: 5}, opts...)
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"code": 200, "message": "ok", "data": data, "timestamp": 1})
}

func loggedInAdmin(t *testing.T) *session.Manager {
	t.Helper()
	m := session.NewManager(session.NewMemoryStore(), nil, nil)
	require.NoError(t, m.LoginAdmin(context.Background(), "admin-jwt", domain.AdminProfile{Username: "root"}))
	return m
}

func TestAdminBearerAttachesToken(t *testing.T) {
	m := loggedInAdmin(t)
	var gotAuth, gotType, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		writeEnvelope(w, http.StatusOK, map[string]any{"id": 7, "title": "Q7", "type": "single"})
	}, WithAuthorizer(AdminBearer(m)))

	q, err := c.Questions().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), q.ID)
	assert.Equal(t, domain.QuestionSingle, q.Type)
	assert.Equal(t, "Bearer admin-jwt", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "/api/questions/7", gotPath)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore(), nil, nil)
	var gotAuth string
	var seen bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, seen = r.Header.Get("Authorization"), true
		writeEnvelope(w, http.StatusOK, "up")
	}, WithAuthorizer(AdminBearer(m)))

	_, err := c.Auth().Health(context.Background())
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsAdminTokenAndReloads(t *testing.T) {
	ctx := context.Background()
	m := loggedInAdmin(t)
	var reloaded []string
	reload := func(_ context.Context, path string) { reloaded = append(reloaded, path) }

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"code":401,"message":"token expired"}`)
	},
		WithAuthorizer(AdminBearer(m)),
		WithUnauthorizedHandler(RejectAndReload(domain.RoleAdmin, m.RejectAdmin, reload, nil)))

	_, err := c.Dashboard().Stats(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "token expired", apiErr.Message)

	assert.Equal(t, []string{"/login"}, reloaded)
	snap := m.Snapshot(ctx)
	assert.False(t, snap.HasAdminToken())
	_, hasProfile := m.AdminProfile(ctx)
	assert.False(t, hasProfile)

	route, _, ok := routes.Default().Lookup("/questions")
	require.True(t, ok)
	assert.Equal(t, domain.RedirectTo(domain.PathAdminLogin), gate.Decide(route, "/questions", snap))
}

func TestUnauthorizedLeavesStudentCredentialAlone(t *testing.T) {
	ctx := context.Background()
	m := loggedInAdmin(t)
	require.NoError(t, m.LoginStudent(ctx, "student-jwt", domain.StudentProfile{StudentNumber: "s1"}))

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	},
		WithAuthorizer(AdminBearer(m)),
		WithUnauthorizedHandler(RejectAndReload(domain.RoleAdmin, m.RejectAdmin, nil, nil)))

	_, err := c.Users().Statistics(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	snap := m.Snapshot(ctx)
	assert.False(t, snap.HasAdminToken())
	assert.Equal(t, "student-jwt", snap.StudentToken)
	assert.Equal(t, domain.RoleStudent, snap.ActiveRole)
}

func TestLateUnauthorizedForReplacedTokenKeepsNewLogin(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(session.NewMemoryStore(), nil, nil)
	require.NoError(t, m.LoginAdmin(ctx, "old-token", domain.AdminProfile{Username: "root"}))

	arrived := make(chan string, 1)
	release := make(chan struct{})
	var reloaded []string
	reload := func(_ context.Context, path string) { reloaded = append(reloaded, path) }

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		arrived <- r.Header.Get("Authorization")
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	},
		WithAuthorizer(AdminBearer(m)),
		WithUnauthorizedHandler(RejectAndReload(domain.RoleAdmin, m.RejectAdmin, reload, nil)))

	errCh := make(chan error, 1)
	go func() {
		_, err := c.Dashboard().Stats(ctx)
		errCh <- err
	}()

	select {
	case got := <-arrived:
		assert.Equal(t, "Bearer old-token", got)
	case <-time.After(5 * time.Second):
		t.Fatal("backend never saw the request")
	}
	require.NoError(t, m.LoginAdmin(ctx, "fresh-token", domain.AdminProfile{Username: "root"}))
	close(release)

	require.ErrorIs(t, <-errCh, ErrUnauthorized)
	snap := m.Snapshot(ctx)
	assert.Equal(t, "fresh-token", snap.AdminToken)
	assert.Equal(t, domain.RoleAdmin, snap.ActiveRole)
	assert.Empty(t, reloaded)
}

func TestFailedLoginDoesNotRejectSession(t *testing.T) {
	ctx := context.Background()
	m := loggedInAdmin(t)
	called := false

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	},
		WithAuthorizer(AdminBearer(m)),
		WithUnauthorizedHandler(func(context.Context, string) { called = true }))

	_, err := c.Auth().Login(ctx, domain.AdminCredentials{Username: "root", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
	assert.True(t, m.Snapshot(ctx).HasAdminToken())
}

func TestEnvelopeErrorCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"code":500,"message":"question missing","data":null}`)
	})

	_, err := c.Answers().QuestionInfo(context.Background(), 99)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, 500, apiErr.Code)
	assert.Equal(t, "question missing", apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestServerErrorPropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Exams().Active(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestNetworkErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(config.BackendConfig{BaseURL: srv.URL, APIPrefix: "/api"})

	_, err := c.Auth().Health(context.Background())
	require.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok)
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))

	_, err := c.Dashboard().Stats(context.Background())
	require.Error(t, err)
}

func TestListQueries(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.EscapedPath()+"?"+r.URL.RawQuery)
		writeEnvelope(w, http.StatusOK, map[string]any{"content": []any{}, "totalElements": 0})
	})
	ctx := context.Background()
	status := domain.ExamEnabled

	_, err := c.Questions().List(ctx, domain.QuestionFilter{Keyword: "go", Type: domain.QuestionJudge})
	require.NoError(t, err)
	_, err = c.Exams().List(ctx, domain.ExamFilter{PageQuery: domain.PageQuery{Page: 2, Size: 20, SortBy: "title", SortDir: "asc"}, Status: &status})
	require.NoError(t, err)
	_, err = c.Students().ByClass(ctx, "CS 1", domain.PageQuery{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/questions?keyword=go&page=0&size=10&type=judge",
		"/api/v1/exams?page=2&size=20&sortBy=title&sortDir=asc&status=1",
		"/api/admin/students/class/CS%201?page=0&size=10",
	}, got)
}

func TestRequestBodies(t *testing.T) {
	var bodies []map[string]any
	var methods []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		bodies = append(bodies, body)
		methods = append(methods, r.Method+" "+r.URL.Path)
		writeEnvelope(w, http.StatusOK, "ok")
	})
	ctx := context.Background()

	require.NoError(t, c.Exams().AddQuestion(ctx, 3, 9, 1, 5))
	require.NoError(t, c.Exams().UpdateStatus(ctx, 3, domain.ExamFinished))
	require.NoError(t, c.Exams().UpdateRecordScore(ctx, 12, 88.5))

	assert.Equal(t, []string{
		"POST /api/v1/exams/3/questions",
		"PUT /api/v1/exams/3/status",
		"PUT /api/v1/exams/records/12/score",
	}, methods)
	assert.Equal(t, map[string]any{"questionId": float64(9), "order": float64(1), "score": float64(5)}, bodies[0])
	assert.Equal(t, map[string]any{"status": float64(2)}, bodies[1])
	assert.Equal(t, map[string]any{"score": 88.5}, bodies[2])
}

func TestStudentPortalUsesStudentToken(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(session.NewMemoryStore(), nil, nil)
	require.NoError(t, m.LoginAdmin(ctx, "admin-jwt", domain.AdminProfile{}))
	require.NoError(t, m.LoginStudent(ctx, "student-jwt", domain.StudentProfile{ID: 4}))

	var gotAuth, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, gotQuery = r.Header.Get("Authorization"), r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, []any{})
	}, WithAuthorizer(StudentBearer(m)))

	_, err := c.StudentPortal().RecentRecords(ctx, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bearer student-jwt", gotAuth)
	assert.Equal(t, "limit=5&studentId=4", gotQuery)
}

func TestDownload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "difficulty=hard", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="questions.xlsx"`)
		_, _ = w.Write([]byte{0x50, 0x4b})
	})

	d, err := c.Questions().Export(context.Background(), domain.QuestionFilter{Difficulty: domain.DifficultyHard, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, "questions.xlsx", d.Filename)
	assert.Equal(t, []byte{0x50, 0x4b}, d.Data)
}

func TestToDomainError(t *testing.T) {
	de := apperrors.ToDomainError(ToDomainError(&APIError{Status: http.StatusOK, Code: 400, Message: "wrong password"}))
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "wrong password", de.Message)

	de = apperrors.ToDomainError(ToDomainError(&APIError{Status: http.StatusUnauthorized}))
	assert.Equal(t, "UNAUTHORIZED", de.Code)

	de = apperrors.ToDomainError(ToDomainError(errors.New("connection refused")))
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus)

	assert.NoError(t, ToDomainError(nil))
}
