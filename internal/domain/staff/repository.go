package staff

import "context"

// Repository describes Staff table access needed by the editor.
type Repository interface {
	List(ctx context.Context) ([]Staff, error)
	Update(ctx context.Context, item Update) error
}
