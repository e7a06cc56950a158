package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/api"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/app/service"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/app/worker"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common/security"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/repository"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/config"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/database"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/queue"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()

	// 4. Initialize Redis
	queue.ConnectRedis()
	defer queue.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	projectRepo := repository.NewPgProjectRepository(database.DB)
	taskRepo := repository.NewPgTaskRepository(database.DB)
	activityRepo := repository.NewPgActivityRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	activityService := service.NewActivityService(queue.RDB, activityRepo)
	projectService := service.NewProjectService(projectRepo, activityService)
	taskService := service.NewTaskService(taskRepo, projectRepo, activityService)

	// 7. Initialize Activity Worker (as a goroutine)
	activityWorker := worker.NewActivityWorker(queue.RDB, activityRepo)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go activityWorker.Start(workerCtx)
	fmt.Println("Activity worker started.")

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, projectService, taskService, activityService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	workerCancel() // Signal worker to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
