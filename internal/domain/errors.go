package domain

import "errors"

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrSpawnFailed         = errors.New("spawn child process")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
