package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/api/dto"
	"github.com/spec-kit/exam-portal/internal/shell"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// ShellHandler lets the window host consult the portal's window rules.
type ShellHandler struct {
	policy  *shell.NavigationPolicy
	windows *shell.WindowOpenHandler
}

// NewShellHandler constructs handler.
func NewShellHandler(policy *shell.NavigationPolicy, windows *shell.WindowOpenHandler) *ShellHandler {
	return &ShellHandler{policy: policy, windows: windows}
}

// Navigation handles POST /shell/navigation.
func (h *ShellHandler) Navigation(c *fiber.Ctx) error {
	target, err := parseShellURL(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NavigationDecision{
		URL:     target,
		Allowed: h.policy.AllowNavigation(target),
	}})
}

// WindowOpen handles POST /shell/window-open. External links are handed to
// the system browser; the answer is always deny.
func (h *ShellHandler) WindowOpen(c *fiber.Ctx) error {
	target, err := parseShellURL(c)
	if err != nil {
		return err
	}
	action := h.windows.HandleOpen(c.UserContext(), target)
	return c.JSON(fiber.Map{"data": dto.WindowOpenDecision{URL: target, Action: string(action)}})
}

func parseShellURL(c *fiber.Ctx) (string, error) {
	var req dto.ShellURLRequest
	if err := c.BodyParser(&req); err != nil {
		return "", apperrors.NewValidationError("invalid payload", nil)
	}
	target := strings.TrimSpace(req.URL)
	if target == "" {
		return "", apperrors.NewValidationError("url is required", nil)
	}
	return target, nil
}
