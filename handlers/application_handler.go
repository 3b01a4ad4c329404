package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/dto"
	"github.com/thehellodigital/job-khuiji/response"
	"github.com/thehellodigital/job-khuiji/services"
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// POST /applications
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var input dto.CreateApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: services.ErrMissingFields.Error()})
		return
	}

	app, err := h.service.Submit(input)
	switch {
	case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to submit application", Details: err.Error()})
	default:
		c.JSON(http.StatusCreated, app)
	}
}

// GET /applications?posterEmail=|jobId=|applicantEmail=
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	apps, err := h.service.ListApplications(
		c.Query("posterEmail"),
		c.Query("jobId"),
		c.Query("applicantEmail"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch applications", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// PATCH /applications/:id
func (h *ApplicationHandler) DecideApplication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input dto.DecideApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.service.Decide(id, input)
	switch {
	case errors.Is(err, services.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Job not found"})
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not authorized"})
	case errors.Is(err, services.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid action"})
	case errors.Is(err, services.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Application already decided"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update application", Details: err.Error()})
	default:
		c.JSON(http.StatusOK, response.UpdateResult{MatchedCount: 1, ModifiedCount: 1})
	}
}

// DELETE /applications/:id?callerEmail=
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteApplication(id, c.Query("callerEmail"))
	switch {
	case errors.Is(err, services.ErrCallerRequired):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not authorized"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to delete application", Details: err.Error()})
	default:
		c.JSON(http.StatusOK, response.DeleteResult{DeletedCount: deleted})
	}
}
