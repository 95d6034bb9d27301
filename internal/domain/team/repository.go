package team

import "context"

// Repository describes Teams table access needed by the editor.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	// Update writes every editable column of item for the row with item.ID.
	Update(ctx context.Context, item Team) error
}
