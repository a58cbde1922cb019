package middleware

import (
	"net/http"

	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request, at a level derived from
// the status. When the handler returned an error the response is not written
// yet, so the status is taken from the classified error instead.
// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				statusCode = classify(v.Error).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns panics into errors handled by the global error handler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableErrorHandler: true,
		DisablePrintStack:   true,
	})
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// classify maps any error reaching the HTTP boundary onto an *errs.HTTPError.
// Unknown routes and methods are not found; other echo errors are internal.
func classify(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound || echoErr.Code == http.StatusMethodNotAllowed {
			return errs.NewNotFoundError()
		}
		return errs.NewInternalServerError(errs.KindInternal, err)
	}

	return sqlerr.HandleError(err)
}

// GlobalErrorHandler is the single place where a failure becomes a response.
//
// The full error is logged with its kind, stack and Postgres details. The
// client only ever receives an empty 404 or the generic 500 body.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := classify(err)
	logger := GetLogger(c)

	if httpErr.Kind == errs.KindNotFound {
		logger.Debug().Err(err).Msg("not found")
	} else {
		event := logger.Error().Stack().
			Err(err).
			Str("error_kind", string(httpErr.Kind)).
			Int("status", httpErr.Status)

		if pgErr := sqlerr.Details(err); pgErr != nil {
			event = event.
				Str("sqlstate", pgErr.DatabaseCode).
				Str("sql_code", string(pgErr.Code)).
				Str("table", pgErr.TableName).
				Str("constraint", pgErr.ConstraintName).
				Str("entity", pgErr.Entity())
		}
		if len(httpErr.Errors) > 0 {
			event = event.Str("fields", httpErr.FieldSummary())
		}
		event.Msg("request failed")
	}

	if c.Response().Committed {
		return
	}

	status, body := httpErr.Response()
	if body == nil {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
