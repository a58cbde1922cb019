package middleware

import (
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// TracingMiddleware owns the New Relic echo middleware. nrApp is nil when
// New Relic is disabled.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request, or does nothing when
// New Relic is disabled.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds request attributes to the transaction and notices
// every error except not-found outcomes.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			status := c.Response().Status
			if err != nil {
				httpErr := classify(err)
				txn.AddAttribute("error.kind", string(httpErr.Kind))
				if pgErr := sqlerr.Details(err); pgErr != nil {
					txn.AddAttribute("db.sqlstate", pgErr.DatabaseCode)
				}
				if httpErr.Status >= 500 {
					txn.NoticeError(nrpkgerrors.Wrap(err))
				}
				// the global error handler has not written the response yet
				status = httpErr.Status
			}

			txn.AddAttribute("http.status_code", status)
			return err
		}
	}
}
