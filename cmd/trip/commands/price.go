package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wanderbot/trip-cli/internal/output"
	"github.com/wanderbot/trip-cli/internal/trip"
)

type priceReport struct {
	TripDetails trip.TripDetails `json:"trip_details"`
	Quote       trip.Quote       `json:"quote"`
}

func PriceCmd() *cobra.Command {
	var (
		input            string
		hotelNight       float64
		transportPerson  float64
		attractionPrices []float64
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a trip summary against live selections",
		Long:  "Reads a search summary JSON (trip_details + price_breakdown) and combines it with selected hotel/transport/attraction prices. Categories without a selection fall back to the summary minimums.",
		Example: `  trip price --input summary.json
  trip price --input summary.json --hotel-night 200 --attraction-person 25 --attraction-person 40
  cat summary.json | trip price --input -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return cmd.Help()
			}

			data, err := readInput(input)
			if err != nil {
				output.JSONError("read summary", err.Error())
				return nil
			}

			var summary trip.Summary
			if err := json.Unmarshal(data, &summary); err != nil {
				output.JSONError("parse summary", err.Error())
				return nil
			}

			var sel trip.SelectionSet
			if hotelNight > 0 {
				sel.Hotel = &trip.HotelSelection{PricePerNight: hotelNight}
			}
			if transportPerson > 0 {
				sel.Transport = &trip.TransportSelection{PricePerPerson: transportPerson}
			}
			for _, p := range attractionPrices {
				sel.Attractions = append(sel.Attractions, trip.AttractionSelection{PricePerPerson: p})
			}

			return output.JSON(priceReport{
				TripDetails: summary.TripDetails,
				Quote:       trip.BuildQuote(summary, sel),
			})
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Summary JSON file, or - for stdin (required)")
	cmd.Flags().Float64Var(&hotelNight, "hotel-night", 0, "Selected hotel price per night")
	cmd.Flags().Float64Var(&transportPerson, "transport-person", 0, "Selected transport price per person")
	cmd.Flags().Float64SliceVar(&attractionPrices, "attraction-person", nil, "Selected attraction price per person (repeatable)")

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
