package response

import "github.com/gofiber/fiber/v3"

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

type OKBody struct {
	OK bool `json:"ok"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageNotFound            = "Not found"
	MessageRouteNotFound       = "Route not found"
	MessageConflict            = "Conflict"
	MessageInternalServerError = "Internal server error"
	MessageError               = "Error"
)

// JSON writes data as the response body with the given status.
func JSON(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func OK(c fiber.Ctx, status int) error {
	return JSON(c, status, OKBody{OK: true})
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Error: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
