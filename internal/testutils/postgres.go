package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/thehellodigital/job-khuiji/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgres returns a migrated database handle for integration tests.
// TEST_DB_DSN points the suite at an existing server; otherwise a disposable
// postgres container is started.
func SetupPostgres() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return open(dsn, func() {})
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "jobkhuiji",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=test password=test dbname=jobkhuiji sslmode=disable",
		host, port.Port(),
	)
	waitForDB(dsn)

	return open(dsn, func() {
		_ = container.Terminate(ctx)
	})
}

func open(dsn string, cleanup func()) (*gorm.DB, func()) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(&models.Job{}, &models.Application{}, &models.AcceptedTask{}); err != nil {
		log.Fatal(err)
	}
	return gormDB, cleanup
}

func waitForDB(dsn string) {
	for i := 0; i < 30; i++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				_ = db.Close()
				return
			}
			_ = db.Close()
		}
		time.Sleep(time.Second)
	}
	log.Fatal("database never became ready")
}
