package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	server := NewServer()

	router := mux.NewRouter()
	router.HandleFunc("/health", server.HealthCheck).Methods("GET")
	router.HandleFunc("/api/plan", server.GeneratePlan).Methods("POST")
	router.HandleFunc("/api/travel-types", server.TravelTypes).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8085"
	}

	addr := fmt.Sprintf(":%s", port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		if err := httpServer.Close(); err != nil {
			log.Printf("Error closing server: %v\n", err)
		}
	}()

	log.Printf("Trip planner service starting on %s\n", addr)
	log.Println("Endpoints:")
	log.Println("  POST   /api/plan          - Generate a day-by-day trip plan")
	log.Println("  GET    /api/travel-types  - List supported travel types")
	log.Println("  GET    /health            - Health check")

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v\n", err)
	}

	log.Println("Server stopped")
}
