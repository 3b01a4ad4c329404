package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/handlers"
	"github.com/thehellodigital/job-khuiji/middleware"
	"github.com/thehellodigital/job-khuiji/repositories"
	"github.com/thehellodigital/job-khuiji/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos := repositories.New()
	svc := services.New(repos)
	h := handlers.New(svc)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Job-Khuiji is running")
	})

	store := r.Group("/", middleware.RequireDatabase())
	{
		freelance := store.Group("/freelance")
		{
			freelance.POST("", h.Job.CreateJob)
			freelance.GET("", h.Job.GetJobs)
			freelance.GET("/job/:id", h.Job.GetJobByID)
			freelance.GET("/:email", h.Job.GetJobsByEmail)
			freelance.PATCH("/:id", h.Job.UpdateJob)
			freelance.PUT("/:id", h.Job.UpdateJob)
			freelance.DELETE("/:id", h.Job.DeleteJob)
		}
		applications := store.Group("/applications")
		{
			applications.POST("", h.Application.SubmitApplication)
			applications.GET("", h.Application.GetApplications)
			applications.PATCH("/:id", h.Application.DecideApplication)
			applications.DELETE("/:id", h.Application.DeleteApplication)
		}
		acceptedTasks := store.Group("/acceptedTasks")
		{
			acceptedTasks.GET("", h.AcceptedTask.GetAcceptedTasks)
			acceptedTasks.DELETE("/:id", h.AcceptedTask.DeleteAcceptedTask)
		}
	}

	r.POST("/upload", h.Upload.UploadFile)
}
