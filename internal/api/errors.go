package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/mspack/mspack/encoding"
	"github.com/mspack/mspack/spectrum"
	"github.com/mspack/mspack/textenc"
)

var ErrInvalidRequest = errors.New("invalid_request")

// clientErrors are the failures caused by the request content.
var clientErrors = []error{
	ErrInvalidRequest,
	spectrum.ErrEmpty,
	spectrum.ErrLengthMismatch,
	spectrum.ErrMalformedFrame,
	encoding.ErrZeroCountRange,
	encoding.ErrInvalidPattern,
	encoding.ErrTruncated,
	encoding.ErrTrailingData,
	encoding.ErrCountTableLength,
	encoding.ErrEmptySequence,
	textenc.ErrInvalidCharacter,
	textenc.ErrOverflow,
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}
