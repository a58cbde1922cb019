// Package middleware stores the global middleware of the HTTP server.
//
// It covers request ids, the request-scoped logger, CORS, secure headers,
// request logging, panic recovery, New Relic tracing and the global error
// handler that turns every failure into a response.
package middleware
