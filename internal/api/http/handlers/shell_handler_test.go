package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/exam-portal/internal/shell"
)

type recordingOpener struct {
	opened []string
}

func (o *recordingOpener) Open(_ context.Context, target string) error {
	o.opened = append(o.opened, target)
	return nil
}

func newShellApp(opener shell.Opener) *fiber.App {
	h := NewShellHandler(shell.NewNavigationPolicy("http://localhost:5173"), shell.NewWindowOpenHandler(opener, nil))
	app := fiber.New()
	app.Post("/shell/navigation", h.Navigation)
	app.Post("/shell/window-open", h.WindowOpen)
	return app
}

func postURL(t *testing.T, app *fiber.App, path, target string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(`{"url":"`+target+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Data map[string]any `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body.Data
}

func TestShellNavigation(t *testing.T) {
	app := newShellApp(&recordingOpener{})

	status, data := postURL(t, app, "/shell/navigation", "http://localhost:5173/student/login")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, data["allowed"])

	_, data = postURL(t, app, "/shell/navigation", "https://example.com/phish")
	assert.Equal(t, false, data["allowed"])
}

func TestShellWindowOpenAlwaysDenies(t *testing.T) {
	opener := &recordingOpener{}
	app := newShellApp(opener)

	status, data := postURL(t, app, "/shell/window-open", "https://docs.example.com/help")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "deny", data["action"])

	_, data = postURL(t, app, "/shell/window-open", "javascript:alert(1)")
	assert.Equal(t, "deny", data["action"])

	assert.Equal(t, []string{"https://docs.example.com/help"}, opener.opened)
}

func TestShellRejectsMissingURL(t *testing.T) {
	app := newShellApp(&recordingOpener{})

	status, _ := postURL(t, app, "/shell/navigation", " ")
	assert.NotEqual(t, fiber.StatusOK, status)
}
