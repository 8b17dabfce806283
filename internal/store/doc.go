// Package store provides file-based persistence for sportsterminal's local state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking, and every write goes through a temp file plus rename so
// a crash never leaves a half-written file behind. Stored files live under
// the user's configured home directory.
//
// The package includes stores for:
//   - Favorite leagues (FavoritesFileStore)
//   - Last fetched scoreboard per league (SnapshotFileStore)
package store
