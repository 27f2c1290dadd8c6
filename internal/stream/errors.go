package stream

import "errors"

var (
	// ErrNotReadable is returned when reading from an output stream.
	ErrNotReadable = errors.New("stream is not readable")
	// ErrNotWritable is returned when writing to an input stream.
	ErrNotWritable = errors.New("stream is not writable")
	// ErrIsDirectory is returned when a path names a directory.
	ErrIsDirectory = errors.New("is a directory")
	// ErrLocked is returned when another process holds a conflicting lock.
	ErrLocked = errors.New("file is in use by another process")
)
