// Package errs defines the error taxonomy of the service.
//
// Every failure that reaches the HTTP layer is an *HTTPError. Its Kind
// drives logging and tracing; Response() is the only place where an outcome
// turns into a status code and body.
package errs
