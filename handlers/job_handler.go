package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/response"
	"github.com/thehellodigital/job-khuiji/services"
)

type JobHandler struct {
	service *services.JobService
}

func NewJobHandler(service *services.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// POST /freelance
func (h *JobHandler) CreateJob(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.service.CreateJob(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to add job", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GET /freelance
func (h *JobHandler) GetJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Query("sort") == "latest")
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch jobs", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GET /freelance/job/:id
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	job, err := h.service.GetJob(id)
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch job", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// GET /freelance/:email
func (h *JobHandler) GetJobsByEmail(c *gin.Context) {
	jobs, err := h.service.ListJobsByPoster(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch jobs", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// PATCH /freelance/:id and PUT /freelance/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	matched, err := h.service.UpdateJob(id, body)
	if errors.Is(err, services.ErrFieldNotString) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update job", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

// DELETE /freelance/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteJob(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to delete job", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DeleteResult{DeletedCount: deleted})
}
