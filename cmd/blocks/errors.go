package main

import "errors"

// Sentinel errors returned while loading settings and documents.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension or
	// output format.
	ErrUnsupportedFormat = errors.New("blocks: unsupported format")

	// ErrInvalidIndent is returned when the indent setting is out of range.
	ErrInvalidIndent = errors.New("blocks: indent must be between 0 and 8")

	// ErrLoadFailed is returned when an input cannot be read.
	ErrLoadFailed = errors.New("blocks: failed to read input")

	// ErrParseFailed is returned when an input cannot be decoded.
	ErrParseFailed = errors.New("blocks: failed to parse input")
)

// exitError requests a non-zero exit code after the command has already
// written its output.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError reports invalid arguments or flags (exit code 2).
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
