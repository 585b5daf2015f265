// Package http implements the HTTP transport layer of the validation service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging and response compression are handled
// here before requests are delegated to the service layer.
package http
