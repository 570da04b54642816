package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/api/dto"
	"github.com/spec-kit/exam-portal/internal/service"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// NavigationHandler serves the route table through the session gate.
type NavigationHandler struct {
	navigator *service.Navigator
}

// NewNavigationHandler constructs handler.
func NewNavigationHandler(navigator *service.Navigator) *NavigationHandler {
	return &NavigationHandler{navigator: navigator}
}

// Guard handles GET on every route-table path: a redirect decision becomes
// a 302, a proceed decision returns the view to render.
func (h *NavigationHandler) Guard(c *fiber.Ctx) error {
	nav, err := h.navigator.Navigate(c.UserContext(), c.Path())
	if err != nil {
		return err
	}
	if nav.Outcome.IsRedirect() {
		return c.Redirect(nav.Outcome.Location, fiber.StatusFound)
	}
	return c.JSON(dto.ViewResponse{
		View:   nav.Route.View,
		Name:   nav.Route.Name,
		Path:   nav.Path,
		Params: nav.Params,
	})
}

// Navigate handles GET /navigate?path=, reporting the decision without
// following it.
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return apperrors.NewValidationError("path is required", nil)
	}
	nav, err := h.navigator.Navigate(c.UserContext(), path)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": nav})
}
