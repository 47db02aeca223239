package metrics

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Serve exposes /metrics on addr in a background goroutine and returns the
// Echo instance so the caller can shut it down. The listener is optional
// plumbing for long-running console sessions; a failure to bind is logged,
// never fatal.
func Serve(addr string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/metrics", echoprometheus.NewHandler())

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics listener stopped")
		}
	}()

	return e
}
