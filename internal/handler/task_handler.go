package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

type TaskResponse struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PointValue   int    `json:"pointValue"`
	ImpactMetric string `json:"impactMetric"`
	Difficulty   string `json:"difficulty"`
}

type TaskListResponse struct {
	Tasks          []TaskResponse `json:"tasks"`
	CompletedCount int            `json:"completedCount"`
	TotalPoints    int            `json:"totalPoints"`
}

func (h *TaskHandler) List(c echo.Context) error {
	id, err := parseUserID(c.QueryParam("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	list, err := h.svc.ListTasks(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		c.Logger().Errorf("list tasks: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch tasks"))
	}

	tasks := make([]TaskResponse, 0, len(list.Tasks))
	for _, a := range list.Tasks {
		tasks = append(tasks, toTaskResponse(a))
	}
	return c.JSON(http.StatusOK, TaskListResponse{
		Tasks:          tasks,
		CompletedCount: list.CompletedCount,
		TotalPoints:    list.TotalPoints,
	})
}

type CompleteActionRequest struct {
	UserID   uint64 `json:"userId" validate:"required"`
	ActionID uint64 `json:"actionId" validate:"required"`
}

type CompleteActionResponse struct {
	NewPoints      int    `json:"newPoints"`
	CompletedCount int    `json:"completedCount"`
	Message        string `json:"message"`
}

func (h *TaskHandler) Complete(c echo.Context) error {
	var req CompleteActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId and actionId are required"))
	}

	res, err := h.svc.CompleteAction(c.Request().Context(), req.UserID, req.ActionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user or action not found"))
		case errors.Is(err, service.ErrAlreadyCompleted):
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "action already completed"))
		default:
			c.Logger().Errorf("complete action: %v", err)
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to complete action"))
		}
	}
	return c.JSON(http.StatusOK, CompleteActionResponse{
		NewPoints:      res.NewPoints,
		CompletedCount: res.CompletedCount,
		Message:        fmt.Sprintf("Great! You earned %d points!", res.PointValue),
	})
}

func toTaskResponse(a model.Action) TaskResponse {
	return TaskResponse{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		PointValue:   a.PointValue,
		ImpactMetric: a.ImpactMetric,
		Difficulty:   a.Difficulty,
	}
}
