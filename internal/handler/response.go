package handler

import (
	"github.com/labstack/echo/v4"
)

// Envelope describes the caller-facing wrapper returned by every endpoint.
// The body statusCode always matches the HTTP status, and data is null when
// there is nothing to return.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// Respond sends the envelope with the HTTP status mirroring statusCode.
func Respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}
