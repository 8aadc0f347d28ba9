package commands

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/wanderbot/trip-cli/internal/adapters/mock"
	"github.com/wanderbot/trip-cli/internal/cache"
	"github.com/wanderbot/trip-cli/internal/config"
	"github.com/wanderbot/trip-cli/internal/core"
	"github.com/wanderbot/trip-cli/internal/output"
	"github.com/wanderbot/trip-cli/internal/trip"
)

const planCacheTTL = time.Hour

func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect trip itineraries",
	}
	cmd.AddCommand(planGenerateCmd())
	cmd.AddCommand(planTypesCmd())
	return cmd
}

func planGenerateCmd() *cobra.Command {
	var (
		criteria        trip.SearchCriteria
		query           string
		travelType      string
		hotelPref       string
		hotelNight      float64
		transportPerson float64
		asText          bool
		noCache         bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a day-by-day trip plan",
		Example: `  trip plan generate --to Paris --checkin 2026-09-12 --checkout 2026-09-19
  trip plan generate --query 'destination=Rome&checkIn=2026-10-01&checkOut=2026-10-05&people=4'
  trip plan generate --to Kyoto --type nature,food --budget 2500 --text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if query != "" {
				parsed, err := trip.ParseCriteria(query)
				if err != nil {
					output.JSONError("invalid search query", err.Error())
					return nil
				}
				mergeCriteria(&criteria, parsed)
			}
			if criteria.Destination == "" {
				return cmd.Help()
			}
			if criteria.People < 1 {
				criteria.People = trip.DefaultPeople
			}
			if criteria.Rooms < 1 {
				criteria.Rooms = trip.DefaultRooms
			}

			modeFlag, _ := cmd.Flags().GetString("mode")
			cfg := config.Load().WithMode(modeFlag)

			best := trip.BestKnownPrices{
				HotelPerNight:      hotelNight,
				TransportPerPerson: transportPerson,
			}
			req := trip.BuildPlanRequest(criteria, best, cfg.Rates)
			if travelType != "" {
				req.TravelType = travelType
			}
			if hotelPref != "" {
				req.HotelPreference = hotelPref
			}

			planCache, cacheErr := cache.New()
			if cacheErr == nil && !noCache {
				if resp, ok := planCache.Get(cache.RequestKey(req), planCacheTTL); ok {
					return renderPlan(resp.Plan, asText)
				}
			}

			orch := core.NewOrchestrator(buildRouter(cfg))
			orch.Open(cmd.Context(), req)
			if err := orch.Wait(cmd.Context()); err != nil {
				output.JSONError("plan generation interrupted", err.Error())
				return nil
			}

			if orch.State() != core.StateReady {
				output.JSONError(orch.Err(), "")
				return nil
			}

			plan := orch.Plan()
			if cacheErr == nil {
				_ = planCache.Put(cache.RequestKey(req), &trip.PlanResponse{Success: true, Plan: plan})
			}
			return renderPlan(plan, asText)
		},
	}

	cmd.Flags().StringVar(&criteria.Origin, "from", "", "Origin city")
	cmd.Flags().StringVar(&criteria.Destination, "to", "", "Destination city (required)")
	cmd.Flags().StringVar(&criteria.CheckIn, "checkin", "", "Check-in date YYYY-MM-DD")
	cmd.Flags().StringVar(&criteria.CheckOut, "checkout", "", "Check-out date YYYY-MM-DD")
	cmd.Flags().IntVar(&criteria.People, "people", trip.DefaultPeople, "Number of travelers")
	cmd.Flags().IntVar(&criteria.Rooms, "rooms", trip.DefaultRooms, "Number of rooms")
	cmd.Flags().IntVar(&criteria.Budget, "budget", 0, "Total budget in USD (0 = estimate)")
	cmd.Flags().StringVar(&query, "query", "", "Search-form query string (origin=..&destination=..&checkIn=..)")
	cmd.Flags().StringVar(&travelType, "type", "", "Travel types, comma-separated (default culture,food)")
	cmd.Flags().StringVar(&hotelPref, "hotel-pref", "", "Hotel preference: budget, mid-range, luxury")
	cmd.Flags().Float64Var(&hotelNight, "hotel-night", 0, "Best known hotel price per night")
	cmd.Flags().Float64Var(&transportPerson, "transport-person", 0, "Best known transport price per person")
	cmd.Flags().BoolVar(&asText, "text", false, "Render the itinerary as markdown text")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the plan cache")

	return cmd
}

func planTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported travel experience types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(mock.TravelTypes())
		},
	}
}

func renderPlan(plan *trip.Plan, asText bool) error {
	if asText {
		return output.Text(output.RenderItinerary(plan))
	}
	return output.JSON(plan)
}

// mergeCriteria fills empty flag fields from a parsed query string; flags
// that were set explicitly win.
func mergeCriteria(dst *trip.SearchCriteria, src trip.SearchCriteria) {
	if dst.Origin == "" {
		dst.Origin = src.Origin
	}
	if dst.Destination == "" {
		dst.Destination = src.Destination
	}
	if dst.CheckIn == "" {
		dst.CheckIn = src.CheckIn
	}
	if dst.CheckOut == "" {
		dst.CheckOut = src.CheckOut
	}
	if dst.People == trip.DefaultPeople && src.People > 0 {
		dst.People = src.People
	}
	if dst.Rooms == trip.DefaultRooms && src.Rooms > 0 {
		dst.Rooms = src.Rooms
	}
	if dst.Budget == 0 {
		dst.Budget = src.Budget
	}
}
