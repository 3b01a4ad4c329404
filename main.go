package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/config"
	"github.com/thehellodigital/job-khuiji/db"
	"github.com/thehellodigital/job-khuiji/middleware"
	"github.com/thehellodigital/job-khuiji/minio"
	"github.com/thehellodigital/job-khuiji/routes"
)

func main() {
	config.LoadConfig()
	db.Init()
	minio.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
