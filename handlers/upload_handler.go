package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/response"
	"github.com/thehellodigital/job-khuiji/services"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// POST /upload
func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No file uploaded"})
		return
	}
	if fileHeader.Size > services.MaxUploadSize {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "File exceeds the 10 MiB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to read file", Details: err.Error()})
		return
	}
	defer file.Close()

	url, publicID, err := h.service.UploadImage(
		c.Request.Context(),
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if errors.Is(err, services.ErrStorageUnavailable) {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Upload failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.UploadResult{URL: url, PublicID: publicID})
}
