package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/SaharI12/PantryChef/config"
	"github.com/SaharI12/PantryChef/internal/api/routes"
	"github.com/SaharI12/PantryChef/internal/database"
	"github.com/SaharI12/PantryChef/internal/genai"
	"github.com/SaharI12/PantryChef/internal/s3"
	"github.com/SaharI12/PantryChef/internal/socket"
)

func main() {
	// 1. Load configuration (.env first, then config file + env overrides)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.Gemini.APIKey == "" {
		log.Fatal("GEMINI_API_KEY must be set")
	}

	// 2. Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// 3. Inference client
	aiClient := genai.NewClient(cfg.Gemini)

	// 4. Photo archive (optional; scanning works without it)
	var s3Uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		s3Uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
	} else {
		log.Println("S3 bucket not configured, scan photos will not be archived")
	}

	// 5. WebSocket hub for inventory snapshot pushes
	wsHub := socket.NewHub()

	// 6. Router
	router := routes.SetupRouter(cfg, db, aiClient, s3Uploader, wsHub)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
