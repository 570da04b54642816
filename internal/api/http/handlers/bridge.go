package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/apiclient"
	"github.com/spec-kit/exam-portal/internal/domain"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// reply renders a backend result, or converts its error. A backend 401
// carries the login page of role as redirect.
func reply(c *fiber.Ctx, role domain.Role, data any, err error) error {
	if err != nil {
		return bridgeError(role, err)
	}
	return c.JSON(fiber.Map{"data": data})
}

func done(c *fiber.Ctx, role domain.Role, err error) error {
	if err != nil {
		return bridgeError(role, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func bridgeError(role domain.Role, err error) error {
	converted := apiclient.ToDomainError(err)
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return apperrors.WithRedirect(converted, role.LoginPath())
	}
	return converted
}

func sendDownload(c *fiber.Ctx, role domain.Role, d *apiclient.Download, err error) error {
	if err != nil {
		return bridgeError(role, err)
	}
	if d.Filename != "" {
		c.Attachment(d.Filename)
	}
	if d.ContentType != "" {
		c.Set(fiber.HeaderContentType, d.ContentType)
	}
	return c.Send(d.Data)
}

func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: c.Params(name)})
	}
	return id, nil
}

func intParam(c *fiber.Ctx, name string) (int, error) {
	v, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: c.Params(name)})
	}
	return v, nil
}

func optionalInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid "+name, map[string]any{name: raw})
	}
	return &v, nil
}

func optionalInt64(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid "+name, map[string]any{name: raw})
	}
	return &v, nil
}

func pageQuery(c *fiber.Ctx) domain.PageQuery {
	return domain.PageQuery{
		Page:    c.QueryInt("page", 0),
		Size:    c.QueryInt("size", 10),
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortDir"),
	}
}

func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}
