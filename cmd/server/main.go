// Package main provides the entry point for the pomodoro tracker server.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pomodoro-tracker/internal/app"
)

// logStartup logs startup information.
func logStartup(cfg *app.Config) {
	log.Println("Starting Pomodoro Tracker server...")
	log.Printf("Database path: %s", cfg.DBPath)
	log.Printf("Timezone: %s", cfg.Timezone)
	log.Printf("Page size: %d rows", cfg.PageSize)
	log.Printf("Goal: %d pomodoros", cfg.Goal)
	log.Printf("Rate limit: %d requests/minute", cfg.RateLimit)
	log.Printf("Port: %s", cfg.Port)
}

func main() {
	// Load configuration
	cfg, err := app.LoadConfig(nil)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Log startup info
	logStartup(cfg)

	// Create and wire application
	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Start server in a goroutine
	go func() {
		if err := a.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Shutdown the server
	if err := a.Shutdown(); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
}
