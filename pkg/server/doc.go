// Package server provides the Calyx development and SSR server.
//
// The server renders registered pages to HTML with hydration IDs stamped on
// interactive elements, serves static assets, and in development mode runs a
// live-reload WebSocket endpoint at /_calyx/reload. Prometheus metrics and
// OpenTelemetry tracing are available as opt-in middleware.
package server
