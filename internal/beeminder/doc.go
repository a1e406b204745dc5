// Package beeminder provides an HTTP implementation of the domain.GoalClient
// interface against the Beeminder API v1.
//
// Supported operations:
//   - Resolving the username that owns an auth token (users/me).
//   - Fetching one goal's deadline, rate and road matrix.
//
// Requests are plain GETs with the token in the auth_token query parameter and
// accept a context for cancellation. 401/403 map to domain.ErrUnauthorized and
// a 404 on a goal maps to domain.ErrGoalNotFound; other non-2xx statuses come
// back as *StatusError. Error messages carry the request path, never the token.
// Nothing is retried.
package beeminder
