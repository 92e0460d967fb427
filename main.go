package main

import (
	"github.com/Aditya122221/ElevateAI-sub001/internal/config"
	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	logger "github.com/Aditya122221/ElevateAI-sub001/internal/logging"
	"github.com/Aditya122221/ElevateAI-sub001/internal/router"
	"github.com/Aditya122221/ElevateAI-sub001/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load a local .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	// Configuration loads before the real logger exists, so it gets a
	// temporary development logger for its reload callback.
	bootLog, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}
	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	log, err := logger.Init(config.Conf.Logging)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// External collaborators are constructed here and injected down.
	ollama := services.NewOllamaClient(config.Conf.AI, log)
	aiService := services.NewAIService(ollama, log)
	emailService := services.NewEmailService(log)

	scheduler := services.NewScheduler(log, emailService)
	scheduler.Start()

	r := router.Setup(log, aiService, ollama, emailService)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
