package handler

import (
	"net/http"

	"anoa.com/internhub/internal/dto"
	"anoa.com/internhub/internal/model"
	"anoa.com/internhub/internal/service"
	"anoa.com/internhub/pkg/apperror"
	"anoa.com/internhub/pkg/response"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionService service.SubmissionService
}

func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

func (h *SubmissionHandler) SubmitTask(c *gin.Context) {
	var input dto.SubmitTaskRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	submission, err := h.submissionService.Submit(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Submit Task", "Submit Task created successfully", submission)
}

func (h *SubmissionHandler) ReviewSubmission(c *gin.Context) {
	var input dto.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	submission, err := h.submissionService.Review(c.Request.Context(), userID, c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Submit Task", "Submit Task edited successfully", submission)
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query.Normalize()

	caller, exists := c.Get("user")
	if !exists {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	submissions, err := h.submissionService.List(c.Request.Context(), caller.(*model.User), query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Submit Task", "Submit Task Listed successfully", submissions)
}
