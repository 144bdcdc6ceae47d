package handler

import (
	"net/http"

	"anoa.com/internhub/internal/dto"
	"anoa.com/internhub/internal/service"
	"anoa.com/internhub/pkg/response"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Task", "Task created successfully", task)
}

func (h *TaskHandler) EditTask(c *gin.Context) {
	var input dto.EditTaskRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.Edit(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Task", "Task edited successfully", task)
}

func (h *TaskHandler) ListSupervisorTasks(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query.Normalize()

	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.taskService.ListForSupervisor(c.Request.Context(), userID, query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Task", "Task Listed successfully", tasks)
}

func (h *TaskHandler) ListInternTasks(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query.Normalize()

	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.taskService.ListForIntern(c.Request.Context(), userID, query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Task", "Task Listed successfully", tasks)
}
