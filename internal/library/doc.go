// Package library maps a directory tree of audiobooks into catalog entries
// and builds downloadable archives out of them.
//
// The expected layout is one subdirectory per audiobook under a single root,
// each containing an info.toml with at least `title` and `author` plus the
// audio files themselves:
//
//	data/
//	  mobydick/
//	    info.toml
//	    01.mp3
//	    02.mp3
//
// [Scan] reads that layout into candidates, [Synchronizer] upserts them into
// the catalog store (full re-sync, idempotent for unchanged trees), and
// [BuildArchive] bundles one audiobook directory into a gzip-compressed tar
// for transfer. [ComputeHash] provides the stable content id that ties the
// three together.
package library
