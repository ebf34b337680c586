// Package api is the REST client for the recco backend.
//
// # Overview
//
// The backend owns all business rules; this package is a thin wrapper that
// serializes requests, attaches the bearer token from the injected
// TokenSource, and deserializes responses. There is deliberately no retry,
// timeout, or caching policy here: every failure is terminal for the one user
// action that triggered it, and the caller's context is the only deadline.
//
// # Error Handling
//
// Transport failures (connection refused, DNS, canceled context) wrap
// ErrUnavailable and can be matched with errors.Is. HTTP error statuses are
// returned as *RequestError carrying the status code and the backend's
// message field when it sent one; match with errors.As or the IsStatus
// helper. Screens translate both into short user-facing strings.
package api
