package model

import "context"

// ObjectStorage looks up and removes objects owned by deleted accounts.
type ObjectStorage interface {
	// ObjectKey extracts the object key from a stored image reference.
	// It reports false when the reference does not point into this storage.
	ObjectKey(ref string) (string, bool)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
