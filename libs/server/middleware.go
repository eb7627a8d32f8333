package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/utils"
)

const RequestIDKey = "X-Request-Id"

func Cors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Access-Control-Allow-Origin", "*")
			c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Api-Key, "+RequestIDKey)
			c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

// RequestID tags every request so log lines can be correlated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDKey)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDKey, id)
			c.Set(RequestIDKey, id)
			return next(c)
		}
	}
}

func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger := logs.GetLogger("httpRequest")
			logger.Info("request handled",
				logs.String("method", c.Request().Method),
				logs.String("path", c.Request().URL.Path),
				logs.String("remote", utils.GetRemoteAddr(c.Request())),
				logs.Int("status", c.Response().Status),
				logs.Duration("elapsed", time.Since(start)),
				logs.ErrorInfo(err),
			)
			return err
		}
	}
}
