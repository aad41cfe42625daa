// internal/api/task_handler.go
package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/repository"
	"github.com/taskboard/taskboard/internal/service"
)

// TaskHandlers maps the /api/tasks routes onto the task service. The
// verb/path to call mapping and the kind to status-code mapping live here;
// no business rule does.
type TaskHandlers struct {
	tasks *service.TaskService
}

func NewTaskHandlers(tasks *service.TaskService) *TaskHandlers {
	return &TaskHandlers{
		tasks: tasks,
	}
}

// List handles GET /api/tasks.
func (h *TaskHandlers) List(c *fiber.Ctx) error {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	tasks, err := h.tasks.List(c.UserContext(), owner)
	if err != nil {
		return h.writeErr(c, err, "Failed to fetch tasks")
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandlers) Get(c *fiber.Ctx) error {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	task, err := h.tasks.Get(c.UserContext(), owner, c.Params("id"))
	if err != nil {
		return h.writeErr(c, err, "Failed to fetch task")
	}
	return c.Status(fiber.StatusOK).JSON(task)
}

// Create handles POST /api/tasks.
func (h *TaskHandlers) Create(c *fiber.Ctx) error {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	task, err := h.tasks.Create(c.UserContext(), owner, req.Title, req.Description)
	if err != nil {
		return h.writeErr(c, err, "Failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update handles PUT /api/tasks/:id.
func (h *TaskHandlers) Update(c *fiber.Ctx) error {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	patch := repository.Patch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if _, err := h.tasks.Update(c.UserContext(), owner, c.Params("id"), patch); err != nil {
		return h.writeErr(c, err, "Failed to update task")
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: "Task updated successfully",
	})
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandlers) Delete(c *fiber.Ctx) error {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.tasks.Delete(c.UserContext(), owner, c.Params("id")); err != nil {
		return h.writeErr(c, err, "Failed to delete task")
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: "Task deleted successfully",
	})
}

// writeErr maps service outcomes to status codes. Anything outside the
// typed kinds is a store failure: logged here, surfaced as a generic 500.
func (h *TaskHandlers) writeErr(c *fiber.Ctx, err error, generic string) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Task not found"})
	default:
		log.Printf("[api] %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: generic})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "Unauthorized"})
}
