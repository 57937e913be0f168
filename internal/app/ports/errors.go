package ports

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrMemoryRead = errors.New("memory read failed")
)
