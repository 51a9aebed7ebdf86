// Package http implements the HTTP transport layer of the application.
//
// It exposes the route table, the greeting handler, and the tracing
// middleware used by the REST API. The tracing middleware only observes
// requests: it writes a span line when a request arrives and a response line
// once the handler has returned, and never alters routing, status, headers
// or body.
package http
