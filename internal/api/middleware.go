package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

// HeaderRequestID carries the request identifier in both directions.
const HeaderRequestID = "X-Request-Id"

// requestID echoes a caller supplied X-Request-Id or assigns a new UUID.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		id := c.Request().Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set(HeaderRequestID, id)

		return next(c)
	}
}

func requestIDOf(c *echo.Context) string {
	return c.Response().Header().Get(HeaderRequestID)
}
