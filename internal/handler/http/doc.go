// Package http implements the web front end of the maintenance record search.
//
// It exposes route wiring, request handlers and middleware. Every browser
// session owns one view-model, resolved from a signed cookie by the session
// middleware; handlers drive that view and render it as HTML through the
// render package. Request tracing, access logging and response compression
// are handled here as well.
package http
