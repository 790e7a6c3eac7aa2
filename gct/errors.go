package gct

import "github.com/pkg/errors"

var (
	ErrEmptyChord    = errors.New("gct: chord has no tones")
	ErrEmptyScale    = errors.New("gct: scale vector is empty")
	ErrUnknownSearch = errors.New("gct: unknown subset search")
)
