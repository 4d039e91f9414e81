package render

import "errors"

var (
	// ErrEmptySeries indicates a Series with no points.
	ErrEmptySeries = errors.New("render: series has no points")

	// ErrLengthMismatch indicates X and Y of different lengths.
	ErrLengthMismatch = errors.New("render: x and y lengths differ")

	// ErrUnsupportedFormat indicates an image format gonum/plot cannot write.
	ErrUnsupportedFormat = errors.New("render: unsupported image format")

	// ErrUnknownKind indicates ParseKind could not recognise its input.
	ErrUnknownKind = errors.New("render: unknown series kind")
)
