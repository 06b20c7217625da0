package store

import "errors"

// Store domain errors
var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrStoreCodeExists = errors.New("store code already exists")
)
