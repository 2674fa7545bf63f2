// Package store provides persistence for nodekey's named records.
//
// Records are opaque byte blobs addressed by name (keyring.yml, conf.yml).
// Two implementations of domain.BlobStore are provided:
//   - FileStore keeps one file per record under a home directory, written
//     via a temp file and rename so a record is never half-written.
//   - SQLStore keeps records in a SQLite table through bun.
//
// Both are safe for concurrent use. A missing record is reported as
// domain.ErrNotFound.
package store
