package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// TodoHandler handles the owner-scoped todo CRUD. The owner always comes
// from the resolved identity, never from the request body.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

type createTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"gt=0,lt=6"`
}

type updateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"gt=0,lt=6"`
	Completed   bool   `json:"completed"`
}

// List returns all todos of the caller.
//
// @Summary      List own todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Todo
// @Failure      401  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// Get returns one todo. A todo owned by another account is a plain 404.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  domain.Todo
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Create adds a todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo details"
// @Success      201   {object}  domain.Todo
// @Failure      400   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.Create(c.Request().Context(), identity.UserID, ports.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update replaces a todo's mutable fields.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Todo id"
// @Param        body  body      updateTodoRequest  true  "New todo state"
// @Success      200   {object}  domain.Todo
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.Update(c.Request().Context(), identity.UserID, id, ports.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// ToggleComplete flips the completed flag.
//
// @Summary      Toggle a todo's completed flag
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  domain.Todo
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id}/complete [patch]
func (h *TodoHandler) ToggleComplete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.ToggleComplete(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete removes a todo.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity.UserID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "todo deleted"})
}

// todoID parses the :id path param. A non-numeric id maps to 404, the same
// outcome as a missing todo.
func todoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrTodoNotFound
	}
	return id, nil
}
