package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// TodoRepository defines persistence for todos. Every operation is scoped
// by owner: queries filter on owner_id so a foreign todo behaves exactly
// like a missing one.
type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Todo, error)
	FindByID(ctx context.Context, id, ownerID int64) (*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id, ownerID int64) error
}
