// Package models defines the domain entities of the audiobook server.
//
// The package contains plain data types shared between the library scanner,
// the repositories and the HTTP layer:
//   - [Audiobook] : one indexed audiobook (content hash, metadata, storage path)
//   - [AudiobookSummary] : catalog listing entry without the storage path
//   - [Position] : a user's last known playback file and offset for one audiobook
//   - [Account] : a registered user with its immutable API key
//
// The content hash is the catalog primary key; path is retrieval-only and
// never leaves the server, so [AudiobookSummary] is what the catalog listing
// serializes.
package models
