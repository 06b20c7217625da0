package store

import "time"

// Store is directory leaf data. Deleting a store does not cascade to its
// employees; display code falls back to the raw code when the join target
// is missing.
type Store struct {
	Code      string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
