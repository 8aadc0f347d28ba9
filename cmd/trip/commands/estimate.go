package commands

import (
	"github.com/spf13/cobra"
	"github.com/wanderbot/trip-cli/internal/config"
	"github.com/wanderbot/trip-cli/internal/output"
	"github.com/wanderbot/trip-cli/internal/trip"
)

type estimateReport struct {
	Destination     string `json:"destination"`
	Nights          int    `json:"nights"`
	People          int    `json:"people"`
	EstimatedBudget int    `json:"estimated_budget"`
	Currency        string `json:"currency"`
	Explicit        bool   `json:"explicit"`
}

func EstimateCmd() *cobra.Command {
	var (
		criteria        trip.SearchCriteria
		hotelNight      float64
		transportPerson float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a trip budget from dates and best known prices",
		Example: `  trip estimate --to Lisbon --checkin 2026-09-12 --checkout 2026-09-19
  trip estimate --to Lisbon --checkin 2026-09-12 --checkout 2026-09-19 --hotel-night 120`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if criteria.Destination == "" {
				return cmd.Help()
			}
			if criteria.People < 1 {
				criteria.People = trip.DefaultPeople
			}

			cfg := config.Load()
			best := trip.BestKnownPrices{
				HotelPerNight:      hotelNight,
				TransportPerPerson: transportPerson,
			}

			return output.JSON(estimateReport{
				Destination:     criteria.Destination,
				Nights:          trip.TripDays(criteria.CheckIn, criteria.CheckOut),
				People:          criteria.People,
				EstimatedBudget: trip.EstimateBudget(criteria, best, cfg.Rates),
				Currency:        "USD",
				Explicit:        criteria.Budget > 0,
			})
		},
	}

	cmd.Flags().StringVar(&criteria.Destination, "to", "", "Destination city (required)")
	cmd.Flags().StringVar(&criteria.CheckIn, "checkin", "", "Check-in date YYYY-MM-DD")
	cmd.Flags().StringVar(&criteria.CheckOut, "checkout", "", "Check-out date YYYY-MM-DD")
	cmd.Flags().IntVar(&criteria.People, "people", trip.DefaultPeople, "Number of travelers")
	cmd.Flags().IntVar(&criteria.Budget, "budget", 0, "Explicit budget (bypasses the heuristic)")
	cmd.Flags().Float64Var(&hotelNight, "hotel-night", 0, "Best known hotel price per night")
	cmd.Flags().Float64Var(&transportPerson, "transport-person", 0, "Best known transport price per person")

	return cmd
}
