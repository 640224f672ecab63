package domain

import "errors"

const (
	PriorityMin = 1
	PriorityMax = 5
)

// Todo is an owned task. Every query that touches todos filters by OwnerID;
// a todo belonging to someone else is indistinguishable from a missing one.
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
	OwnerID     int64  `json:"owner_id"`
}

// ErrTodoNotFound is returned both when a todo does not exist and when it
// exists but is owned by another account.
var ErrTodoNotFound = errors.New("todo not found")

var ErrInvalidTodo = errors.New("invalid todo")
