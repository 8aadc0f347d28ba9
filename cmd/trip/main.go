package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wanderbot/trip-cli/cmd/trip/commands"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "trip",
		Short: "Wanderbot trip planner – cost estimates, quotes, and AI-style itineraries",
		Long:  "A local-first trip planning CLI that estimates budgets, prices hotel/transport/attraction selections, and generates day-by-day itineraries with compact JSON output.",
	}

	root.PersistentFlags().String("mode", "", "Provider mode: mock, live, hybrid (default from config/env)")
	root.PersistentFlags().Bool("json", true, "Output as JSON (default true)")

	root.AddCommand(commands.PlanCmd())
	root.AddCommand(commands.PriceCmd())
	root.AddCommand(commands.EstimateCmd())
	root.AddCommand(commands.ProvidersCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print trip CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("trip v0.1.0")
		},
	}
}
