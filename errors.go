package yaz0

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrBadMagic        = errors.New("missing Yaz0 magic in frame header")
	ErrTruncated       = errors.New("unexpected end of input")
	ErrInvalidDistance = errors.New("back-reference points before start of output")
	ErrNilReader       = errors.New("reader is nil")
)
