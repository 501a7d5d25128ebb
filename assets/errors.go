package assets

import "errors"

var (
	// ErrResourceNotFound is returned when a texture, sound or map file is
	// missing from the asset bundle.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidLevelData is returned when a map lacks a required layer or
	// carries properties that cannot be used.
	ErrInvalidLevelData = errors.New("invalid level data")
)
