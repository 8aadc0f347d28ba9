package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wanderbot/trip-cli/internal/config"
)

var testRates = config.Rates{
	DefaultHotelRate:     150,
	DefaultTransportRate: 300,
	MiscBufferRate:       100,
}

func TestEstimateBudget_ExplicitBudgetWins(t *testing.T) {
	c := SearchCriteria{
		Destination: "Paris",
		CheckIn:     "2026-06-12",
		CheckOut:    "2026-06-19",
		People:      4,
		Budget:      1234,
	}
	best := BestKnownPrices{HotelPerNight: 500, TransportPerPerson: 900}

	assert.Equal(t, 1234, EstimateBudget(c, best, testRates))
}

func TestEstimateBudget_AllDefaults(t *testing.T) {
	// 7 nights, 2 people: hotel 150*7 + transport 300*2 + buffer 100*7*2.
	c := SearchCriteria{
		Destination: "Paris",
		CheckIn:     "2026-06-12",
		CheckOut:    "2026-06-19",
		People:      2,
	}

	assert.Equal(t, 3050, EstimateBudget(c, BestKnownPrices{}, testRates))
}

func TestEstimateBudget_KnownPricesPreferred(t *testing.T) {
	// 2 nights, 2 people: hotel 100*2 + transport 80*2 + buffer 100*2*2.
	c := SearchCriteria{
		Destination: "Lisbon",
		CheckIn:     "2026-06-12",
		CheckOut:    "2026-06-14",
		People:      2,
	}
	best := BestKnownPrices{HotelPerNight: 100, TransportPerPerson: 80}

	assert.Equal(t, 760, EstimateBudget(c, best, testRates))
}

func TestEstimateBudget_MissingDatesAndPeople(t *testing.T) {
	// Defaults: 3 nights, 2 people.
	c := SearchCriteria{Destination: "Rome"}
	want := 150*3 + 300*2 + 100*3*2

	assert.Equal(t, want, EstimateBudget(c, BestKnownPrices{}, testRates))
}

func TestEstimateBudget_AtLeastBuffer(t *testing.T) {
	c := SearchCriteria{
		Destination: "Rome",
		CheckIn:     "2026-06-12",
		CheckOut:    "2026-06-17",
		People:      3,
	}
	buffer := testRates.MiscBufferRate * 5 * 3

	got := EstimateBudget(c, BestKnownPrices{}, testRates)
	assert.GreaterOrEqual(t, got, buffer)
	assert.Positive(t, got)
}

func TestBuildPlanRequest_Defaults(t *testing.T) {
	c := SearchCriteria{
		Destination: "Kyoto",
		CheckIn:     "2026-10-01",
		CheckOut:    "2026-10-05",
	}

	req := BuildPlanRequest(c, BestKnownPrices{}, testRates)

	assert.Equal(t, "Your City", req.Origin)
	assert.Equal(t, "Kyoto", req.Destination)
	assert.Equal(t, DefaultTravelType, req.TravelType)
	assert.Equal(t, DefaultHotelPreference, req.HotelPreference)
	assert.Equal(t, 4, req.NumDays)
	assert.Equal(t, DefaultPeople, req.NumPeople)
	assert.Equal(t, EstimateBudget(c, BestKnownPrices{}, testRates), req.Budget)
}

func TestBuildPlanRequest_KeepsOrigin(t *testing.T) {
	c := SearchCriteria{Origin: "Berlin", Destination: "Kyoto", People: 3}

	req := BuildPlanRequest(c, BestKnownPrices{}, testRates)

	assert.Equal(t, "Berlin", req.Origin)
	assert.Equal(t, 3, req.NumPeople)
}
