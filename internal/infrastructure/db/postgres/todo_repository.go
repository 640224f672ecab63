package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// TodoRepository implements ports.TodoRepository on Postgres. Every query
// filters by owner_id; a row owned by another account never comes back.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), priority, completed, owner_id
		 FROM todos WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id, ownerID int64) (*domain.Todo, error) {
	var t domain.Todo
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), priority, completed, owner_id
		 FROM todos WHERE id = $1 AND owner_id = $2`, id, ownerID).
		Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO todos (title, description, priority, completed, owner_id)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		 RETURNING id`,
		todo.Title, todo.Description, todo.Priority, todo.Completed, todo.OwnerID).
		Scan(&todo.ID)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE todos SET title = $3, description = NULLIF($4, ''), priority = $5, completed = $6
		 WHERE id = $1 AND owner_id = $2`,
		todo.ID, todo.OwnerID, todo.Title, todo.Description, todo.Priority, todo.Completed)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
