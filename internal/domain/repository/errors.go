package repository

import "errors"

// Repository mutation failures. They are returned to the caller, never
// raised as panics; a caller may treat them as fatal or ignore them
// (e.g. a no-op delete of an already-removed entry).
var (
	// ErrUnknownIdentity indicates an update/remove target that no longer exists
	ErrUnknownIdentity = errors.New("unknown item identity")

	// ErrInvalidIndex indicates a move source or destination out of bounds
	ErrInvalidIndex = errors.New("invalid line index")
)

// FileStore failures, propagated unchanged through LoadFile/SaveFile
var (
	// ErrFileNotFound indicates the load target does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidEncoding indicates the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrNoFileLoaded indicates a save without a previously bound target
	ErrNoFileLoaded = errors.New("no file loaded")

	// ErrWriteFailed indicates the save could not be written
	ErrWriteFailed = errors.New("write failed")
)
