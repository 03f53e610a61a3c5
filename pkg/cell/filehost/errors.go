package filehost

import "errors"

var (
	// ErrCorrupt indicates the backing file's contents could not be decoded.
	ErrCorrupt = errors.New("filehost: corrupt")

	// ErrIncompatible indicates the backing file was written by an
	// incompatible format version.
	ErrIncompatible = errors.New("filehost: incompatible version")

	// ErrClosed indicates an operation on a Host that has already been closed.
	ErrClosed = errors.New("filehost: closed")
)
