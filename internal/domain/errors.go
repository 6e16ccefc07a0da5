package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidImage     = errors.New("invalid image file")
	ErrGenerationFailed = errors.New("generation failed")
	ErrEncodingFailed   = errors.New("encoding failed")
	ErrBadTransition    = errors.New("invalid status transition")
)
