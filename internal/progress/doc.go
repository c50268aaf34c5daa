// Package progress holds the child's persisted record: stars, completed
// categories, level and language. The record is stored as a single JSON
// blob under a fixed key. Loading tolerates malformed or partial blobs by
// merging what it can over the defaults.
package progress
