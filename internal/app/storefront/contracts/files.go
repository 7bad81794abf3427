package contracts

import "context"

// FileStore removes stored files such as orphaned product images.
type FileStore interface {
	DeleteFile(ctx context.Context, path string) error
}

// Sink accepts a byte stream and then either completes or fails as a whole.
// Nothing written is visible to the sink's consumer before Commit.
type Sink interface {
	Write(p []byte) (int, error)
	Commit() error
	Abort() error
}

// ArtifactStore opens durable sinks keyed by name.
type ArtifactStore interface {
	Create(ctx context.Context, key string) (Sink, error)
}
