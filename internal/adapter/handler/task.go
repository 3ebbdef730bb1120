package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/common"
	taskDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	taskUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/task"
)

// Task handles action item HTTP requests
type Task struct {
	taskService taskUsecase.Service
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService taskUsecase.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles GET /api/tasks
// @Summary      List tasks
// @Description  Lists action items newest first, optionally filtered by status
// @Tags         Tasks
// @Produce      json
// @Param        status  query     string  false  "Exact status match"
// @Param        skip    query     int     false  "Rows to skip"  default(0)
// @Param        limit   query     int     false  "Page size"     default(50)
// @Success      200     {array}   task.ActionItemResponse
// @Failure      400     {object}  common.ErrorResponse
// @Router       /api/tasks [get]
func (h *Task) ListTasks(c echo.Context) error {
	req := taskDTO.DefaultListTasksRequest()
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	filters := repositories.ActionItemFilters{
		Offset: req.Skip,
		Limit:  req.Limit,
	}
	if req.Status != "" {
		filters.Status = &req.Status
	}

	items, err := h.taskService.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list tasks", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemListResponse(items))
}

// GetTask handles GET /api/tasks/:id
// @Summary      Get task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  task.ActionItemResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *Task) GetTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// UpdateTask handles PATCH /api/tasks/:id
// @Summary      Update task
// @Description  Partial update. Omitted fields are unchanged; assignee and due_date may be set to null.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Task ID"
// @Param        request  body      task.UpdateTaskRequest     true  "Fields to change"
// @Success      200      {object}  task.ActionItemResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /api/tasks/{id} [patch]
func (h *Task) UpdateTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// decoded directly so absent keys stay distinguishable from nulls
	var req taskDTO.UpdateTaskRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	item, err := h.taskService.UpdateTask(c.Request().Context(), id, taskUsecase.Patch{
		Description: req.Description,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// DeleteTask handles DELETE /api/tasks/:id
// @Summary      Delete task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  common.MessageResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *Task) DeleteTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.MessageResponse{Message: "Task deleted successfully"})
}
