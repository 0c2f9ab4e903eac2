package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ReplaceAll(ctx context.Context, matches []Match) error
}
