package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/wanderbot/trip-cli/internal/adapters/mock"
	"github.com/wanderbot/trip-cli/internal/core"
	"github.com/wanderbot/trip-cli/internal/trip"
)

// Server exposes the template planner over HTTP. It serves the same
// contract the CLI's live adapter consumes.
type Server struct {
	planner core.PlanAdapter
}

func NewServer() *Server {
	return &Server{planner: mock.NewMockPlannerAdapter()}
}

// GeneratePlan handles POST /api/plan.
func (s *Server) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req trip.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, trip.PlanResponse{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	if req.Destination == "" {
		writeJSON(w, http.StatusBadRequest, trip.PlanResponse{
			Success: false,
			Error:   "destination is required",
		})
		return
	}
	if req.TravelType == "" {
		req.TravelType = trip.DefaultTravelType
	}
	if req.HotelPreference == "" {
		req.HotelPreference = trip.DefaultHotelPreference
	}
	if req.NumDays < 1 {
		req.NumDays = trip.DefaultTripDays
	}
	if req.NumPeople < 1 {
		req.NumPeople = trip.DefaultPeople
	}

	requestID := uuid.New().String()
	resp, err := s.planner.GeneratePlan(r.Context(), req)
	if err != nil {
		log.Printf("plan generation failed (request %s): %v\n", requestID, err)
		writeJSON(w, http.StatusInternalServerError, trip.PlanResponse{
			Success:   false,
			Error:     "plan generation failed",
			RequestID: requestID,
		})
		return
	}
	resp.RequestID = requestID

	log.Printf("generated %d-day plan for %s (request %s)\n", req.NumDays, req.Destination, requestID)
	writeJSON(w, http.StatusOK, resp)
}

// TravelTypes handles GET /api/travel-types.
func (s *Server) TravelTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"travel_types": mock.TravelTypes(),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v\n", err)
	}
}
