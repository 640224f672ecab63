package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// TodoService implements the owner-scoped todo use cases. The owner id comes
// from the resolved identity; it is the only thing standing between accounts,
// so every repository call carries it.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

func (s *TodoService) List(ctx context.Context, ownerID int64) ([]*domain.Todo, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *TodoService) Get(ctx context.Context, ownerID, id int64) (*domain.Todo, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, input ports.CreateTodoInput) (*domain.Todo, error) {
	if input.Title == "" || input.Priority < domain.PriorityMin || input.Priority > domain.PriorityMax {
		return nil, domain.ErrInvalidTodo
	}

	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   false,
		OwnerID:     ownerID,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("todo_id", created.ID).Int64("owner_id", ownerID).Msg("todo created")
	return created, nil
}

func (s *TodoService) Update(ctx context.Context, ownerID, id int64, input ports.UpdateTodoInput) (*domain.Todo, error) {
	if input.Title == "" || input.Priority < domain.PriorityMin || input.Priority > domain.PriorityMax {
		return nil, domain.ErrInvalidTodo
	}

	todo, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Priority = input.Priority
	todo.Completed = input.Completed

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) ToggleComplete(ctx context.Context, ownerID, id int64) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed
	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info().Int64("todo_id", id).Int64("owner_id", ownerID).Msg("todo deleted")
	return nil
}
