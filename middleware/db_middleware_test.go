package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/thehellodigital/job-khuiji/db"
	"github.com/thehellodigital/job-khuiji/middleware"
)

func TestRequireDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db.InitWithGormDB(nil)

	r := gin.New()
	r.GET("/jobs", middleware.RequireDatabase(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "DB not connected")
}
