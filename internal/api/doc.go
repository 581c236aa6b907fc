// Package api is the typed client for the Crewdeck REST backend.
//
// # Overview
//
// The package provides:
//  1. An authenticated request core (see Client) that attaches the current
//     bearer token, encodes JSON and multipart bodies, and on a 401
//     response performs exactly one refresh-and-retry cycle before
//     surfacing failure. Concurrent refreshes are coalesced.
//  2. One method per backend endpoint, grouped by resource: auth, users,
//     teams, projects, board, cards, events, notifications, docs, files,
//     webhooks and API keys. Methods shape requests only; they carry no
//     business logic.
//
// # Error Handling
//
// An unrecovered 401 is ErrUnauthorized, matchable with errors.Is. Other
// non-2xx/3xx responses yield *APIError with the backend's error message
// when present. Transport failures are wrapped and propagated as-is.
//
// Concurrency & Contexts
//
// Client is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
