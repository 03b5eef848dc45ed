package external

import (
	"game-catalog/core/errs"

	"github.com/gofiber/fiber/v2"
)

// Status maps a failure kind to its HTTP status.
func Status(kind errs.Kind) int {
	switch kind {
	case errs.NotFound:
		return fiber.StatusNotFound
	case errs.Malformed, errs.ServerFault:
		return fiber.StatusBadGateway
	case errs.RateLimited:
		return fiber.StatusServiceUnavailable
	case errs.ClientFault, errs.InvalidParameters:
		return fiber.StatusBadRequest
	case errs.TransportFault:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error   string    `json:"error"`
	Kind    errs.Kind `json:"kind"`
	Message string    `json:"message"`
}

// MessageResponse is the JSON body of a successful write.
type MessageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func respondError(c *fiber.Ctx, err error) error {
	e := errs.From(err, errs.TransportFault)
	return c.Status(Status(e.Kind)).JSON(ErrorResponse{
		Error:   e.Kind.Title(),
		Kind:    e.Kind,
		Message: e.Detail,
	})
}
