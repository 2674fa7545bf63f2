package interfaces

import "context"

// BlobStore persists named records as opaque bytes.
//
// Read returns types.ErrNotFound (possibly wrapped) when the record does not
// exist. Each Write replaces the whole record atomically.
type BlobStore interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, content []byte) error
}
