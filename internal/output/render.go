package output

import (
	"fmt"
	"strings"

	"github.com/wanderbot/trip-cli/internal/trip"
)

// RenderItinerary formats a plan as readable markdown: overview, every day
// with every activity, then tips and the cost breakdown when present.
func RenderItinerary(plan *trip.Plan) string {
	if plan == nil {
		return ""
	}

	people := "people"
	if plan.NumPeople == 1 {
		people = "person"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %d-Day Trip to %s\n", plan.NumDays, plan.Destination)
	fmt.Fprintf(&b, "**Total Budget:** $%d for %d %s\n", plan.Budget, plan.NumPeople, people)
	if plan.DailyBudget > 0 {
		fmt.Fprintf(&b, "**Daily Budget:** $%d\n", plan.DailyBudget)
	}
	b.WriteString("\n")

	for _, day := range plan.Itinerary {
		fmt.Fprintf(&b, "## %s\n\n", day.Title)
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "**%s**\n", act.Time)
			fmt.Fprintf(&b, "- %s\n", act.Activity)
			if act.Description != "" {
				fmt.Fprintf(&b, "  _%s_\n", act.Description)
			}
			if act.EstimatedCost > 0 {
				fmt.Fprintf(&b, "  Est. cost: $%.0f\n", act.EstimatedCost)
			}
			b.WriteString("\n")
		}
		if day.DayTotal > 0 {
			fmt.Fprintf(&b, "**Day Total:** $%.0f\n\n", day.DayTotal)
		}
	}

	if len(plan.Tips) > 0 {
		b.WriteString("## Travel Tips\n")
		for _, tip := range plan.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	if cb := plan.CostBreakdown; cb != nil {
		b.WriteString("## Estimated Costs\n")
		fmt.Fprintf(&b, "- Hotel: $%.0f\n", cb.Hotel)
		fmt.Fprintf(&b, "- Transport: $%.0f\n", cb.Transport)
		fmt.Fprintf(&b, "- Activities: $%.0f\n", cb.Attractions)
		fmt.Fprintf(&b, "- **Total Estimated:** $%.0f\n", cb.EstimatedTotal)
	}

	return strings.TrimRight(b.String(), "\n")
}
