package ports

import "context"

// DocumentValidator decides whether the holder of a document may vote.
type DocumentValidator interface {
	Validate(ctx context.Context, document string) (bool, error)
}
