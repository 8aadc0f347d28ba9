package trip

import (
	"math"

	"github.com/wanderbot/trip-cli/internal/config"
)

// EstimateBudget produces a trip budget heuristic when the user did not
// state one. An explicit criteria budget wins outright. Otherwise the
// estimate stacks a hotel component, a transport component, and a
// per-night-per-person buffer for food and activities, preferring the best
// known real prices over the configured fallback rates.
//
// The result is a rough planning figure, not a quote.
func EstimateBudget(c SearchCriteria, best BestKnownPrices, rates config.Rates) int {
	if c.Budget > 0 {
		return c.Budget
	}

	nights := TripDays(c.CheckIn, c.CheckOut)
	people := c.People
	if people < 1 {
		people = DefaultPeople
	}

	var budget float64

	if best.HotelPerNight > 0 {
		budget += best.HotelPerNight * float64(nights)
	} else {
		budget += float64(rates.DefaultHotelRate) * float64(nights)
	}

	if best.TransportPerPerson > 0 {
		budget += best.TransportPerPerson * float64(people)
	} else {
		budget += float64(rates.DefaultTransportRate) * float64(people)
	}

	budget += float64(rates.MiscBufferRate) * float64(nights) * float64(people)

	return int(math.Ceil(budget))
}

// BuildPlanRequest assembles the outbound plan request from search criteria,
// deriving duration and budget and filling the fixed preference defaults.
func BuildPlanRequest(c SearchCriteria, best BestKnownPrices, rates config.Rates) PlanRequest {
	origin := c.Origin
	if origin == "" {
		origin = "Your City"
	}
	people := c.People
	if people < 1 {
		people = DefaultPeople
	}

	return PlanRequest{
		Origin:          origin,
		Destination:     c.Destination,
		TravelType:      DefaultTravelType,
		HotelPreference: DefaultHotelPreference,
		NumDays:         TripDays(c.CheckIn, c.CheckOut),
		NumPeople:       people,
		Budget:          EstimateBudget(c, best, rates),
	}
}
