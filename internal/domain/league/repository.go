package league

import "context"

// Repository describes League lookup access.
type Repository interface {
	List(ctx context.Context) ([]League, error)
}
