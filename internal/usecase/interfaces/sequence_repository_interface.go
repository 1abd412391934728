package interfaces

import "context"

// ISequenceRepository hands out monotonically increasing numbers per named
// counter (e.g. project numbers). Next never returns the same value twice for
// a name, even across failed callers.

type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
