// Package controller holds HTTP middleware and handlers for the operational
// server: request-scoped logging and pprof. The service exposes no business
// HTTP surface; these are observability endpoints only.
package controller
