package db

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/thehellodigital/job-khuiji/config"
	"github.com/thehellodigital/job-khuiji/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB

	mu        sync.RWMutex
	connected bool
)

const retryInterval = 15 * time.Second

// Init attempts the initial connection. When the database is unreachable the
// process keeps running, handlers answer 503 and a background loop keeps
// retrying until the connection succeeds.
func Init() {
	if err := connect(); err != nil {
		log.Println("Database connection failed:", err)
		go retryLoop()
		return
	}
	log.Println("Database connected and migrated")
}

func connect() error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(&models.Job{}, &models.Application{}, &models.AcceptedTask{}); err != nil {
		return err
	}

	mu.Lock()
	DB = gormDB
	connected = true
	mu.Unlock()
	return nil
}

func retryLoop() {
	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()
	for range ticker.C {
		if err := connect(); err != nil {
			log.Println("Database reconnect failed:", err)
			continue
		}
		log.Println("Database connected and migrated")
		return
	}
}

// Ready reports whether the store connection has been established.
func Ready() bool {
	mu.RLock()
	defer mu.RUnlock()
	return connected
}

// InitWithGormDB wires an externally constructed handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	mu.Lock()
	DB = gormDB
	connected = gormDB != nil
	mu.Unlock()
}
