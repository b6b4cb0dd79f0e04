package snapshot

import "errors"

var (
	// ErrBadMagic indicates the file's leading 8 bytes were not
	// "OGRGRAPH".
	ErrBadMagic = errors.New("snapshot: bad magic, not an ogr graph file")

	// ErrUnsupportedVersion indicates a version other than the one
	// this codec writes.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")

	// ErrTruncated indicates the stream ended before a record it
	// declared could be fully read.
	ErrTruncated = errors.New("snapshot: truncated file")
)
