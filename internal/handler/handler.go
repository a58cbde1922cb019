// Package handler is the HTTP layer between the router and the services.
//
// Each handler binds its request, makes exactly one service call and hands
// the outcome back to the pipeline in base.go, which writes successes and
// leaves failures to the global error handler.
package handler
