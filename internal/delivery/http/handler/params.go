package handler

import (
	"strconv"
	"strings"

	"upath/internal/delivery/http/middleware"
	"upath/internal/pkg/validate"

	"github.com/gofiber/fiber/v3"
)

// intParam parses a numeric path parameter, answering 400 with msg when it
// is not an integer.
func intParam(c fiber.Ctx, name, msg string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, msg, err)
	}
	return v, nil
}

func userParam(c fiber.Ctx, name string) (string, error) {
	id := strings.TrimSpace(c.Params(name))
	if id == "" {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Invalid user ID", nil)
	}
	return id, nil
}

// bindJSON decodes and validates an optional JSON body. An empty body leaves
// out untouched. msg is used for malformed JSON; validation failures carry
// their own message.
func bindJSON(c fiber.Ctx, out any, msg string) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.Bind().JSON(out); err != nil {
		if validate.IsValidationError(err) {
			return middleware.NewAppError(fiber.StatusBadRequest, validate.Message(err), err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, msg, err)
	}
	return nil
}
