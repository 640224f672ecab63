package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// CreateTodoInput carries the fields for a new todo.
type CreateTodoInput struct {
	Title       string
	Description string
	Priority    int
}

// UpdateTodoInput carries the full replacement state for a todo.
type UpdateTodoInput struct {
	Title       string
	Description string
	Priority    int
	Completed   bool
}

// TodoService defines the owner-scoped todo use cases.
type TodoService interface {
	List(ctx context.Context, ownerID int64) ([]*domain.Todo, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Todo, error)
	Create(ctx context.Context, ownerID int64, input CreateTodoInput) (*domain.Todo, error)
	Update(ctx context.Context, ownerID, id int64, input UpdateTodoInput) (*domain.Todo, error)
	// ToggleComplete flips the completed flag and returns the new state.
	ToggleComplete(ctx context.Context, ownerID, id int64) (*domain.Todo, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
