// Package server provides HTTP routing, middleware, and the audiobook API handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method-qualified route patterns.
//
// # API Handler
//
// [APIHandler] implements the [Handler] interface and serves the whole request
// surface: catalog listing, archive download, playback position sync, and
// account registration/login. Every book and position route authenticates the
// caller by resolving the opaque `Auth` header through the account repository.
//
// # Answers
//
// Failures (and bare successes) serialize to the closed [Answer] enumeration,
// a stable {code, msg} pair clients switch on. Handlers never leak internal
// error strings onto the wire.
package server
