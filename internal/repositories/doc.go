// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository wraps a shared [database/sql] handle; the handle is passed
// in explicitly so tests can run against isolated in-memory databases. The
// store's own transactional guarantees are the only concurrency control in
// the system.
//
// Key Implementations:
//   - [AudiobookRepository] : catalog of indexed audiobooks keyed by content hash
//   - [PositionRepository] : per-user playback positions with atomic upsert
//   - [AccountRepository] : registered users and API key resolution
//
// Not-found conditions surface as [shared.ErrNotFound] (or
// [shared.ErrUnauthorized] for key lookups) wrapped with context, so callers
// can branch with [errors.Is].
package repositories
