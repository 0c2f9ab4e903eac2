package team

import "context"

// Repository describes team lookups needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	ReplaceAll(ctx context.Context, teams []Team) error
}
