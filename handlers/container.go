package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/response"
	"github.com/thehellodigital/job-khuiji/services"
)

type Handlers struct {
	Job          *JobHandler
	Application  *ApplicationHandler
	AcceptedTask *AcceptedTaskHandler
	Upload       *UploadHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Job:          NewJobHandler(svc.Job),
		Application:  NewApplicationHandler(svc.Application),
		AcceptedTask: NewAcceptedTaskHandler(svc.AcceptedTask),
		Upload:       NewUploadHandler(svc.Upload),
	}
}

// parseIDParam reads the :id path parameter. A malformed id answers 400
// immediately; callers bail out when ok is false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
