package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns every task of the owner sorted in memory by ?sort and ?direction.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)
	tasks, err := h.taskService.ListTasks(c.Request.Context(), ownerID, c.Query("sort"), c.Query("direction"))
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)

	filter, err := validation.BuildTaskFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskFilter)
		return
	}

	page, normalized, err := h.taskService.Search(c.Request.Context(), ownerID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSortProperty) {
			respondError(c, http.StatusBadRequest, apierrors.MsgUnknownSortProperty)
			return
		}

		zap.L().Error("failed to search tasks", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailSearchTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPage(page, normalized.Ignored))
}

func (h *TaskHandler) UpcomingTasks(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)
	tasks, err := h.taskService.UpcomingTasks(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list upcoming tasks", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpcomingTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) TaskStats(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)
	stats, err := h.taskService.Stats(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to compute task stats", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTaskStats)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStats(stats))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetOwnerID(c), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}

		zap.L().Error("failed to get task", zap.String("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetOwnerID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTaskInput):
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		case errors.Is(err, domain.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
		default:
			zap.L().Error("failed to create task", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetOwnerID(c), taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		case errors.Is(err, domain.ErrInvalidTaskInput):
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		case errors.Is(err, domain.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
		default:
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTask)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetOwnerID(c), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}
