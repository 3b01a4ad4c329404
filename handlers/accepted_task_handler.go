package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/response"
	"github.com/thehellodigital/job-khuiji/services"
)

type AcceptedTaskHandler struct {
	service *services.AcceptedTaskService
}

func NewAcceptedTaskHandler(service *services.AcceptedTaskService) *AcceptedTaskHandler {
	return &AcceptedTaskHandler{service: service}
}

// GET /acceptedTasks?userEmail=
func (h *AcceptedTaskHandler) GetAcceptedTasks(c *gin.Context) {
	userEmail := c.Query("userEmail")
	if userEmail == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "userEmail query parameter required"})
		return
	}

	tasks, err := h.service.ListByUserEmail(userEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch tasks", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// DELETE /acceptedTasks/:id
func (h *AcceptedTaskHandler) DeleteAcceptedTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to delete task", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DeleteResult{DeletedCount: deleted})
}
