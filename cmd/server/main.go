package main

import (
	"log"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"parkgarage/internal/config"
	"parkgarage/internal/logger"
	"parkgarage/internal/middleware"
	"parkgarage/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Setup Gin router with the injected handle
	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("server listening on :%s", port)
	log.Printf("🚀 Server running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
