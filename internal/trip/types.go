package trip

// Wire formats follow the travel-search backend: snake_case keys for price
// and plan payloads, camelCase for the search form query string.

const (
	DefaultTravelType      = "culture,food"
	DefaultHotelPreference = "mid-range"
	DefaultPeople          = 2
	DefaultRooms           = 1
)

// SearchCriteria is the submitted search form. Immutable once built.
type SearchCriteria struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty"`
	People      int    `json:"people"`
	Rooms       int    `json:"rooms"`
	Budget      int    `json:"budget,omitempty"`
}

// BestKnownPrices carries the first-candidate prices from a search result,
// used to sharpen the budget estimate. Zero means unknown.
type BestKnownPrices struct {
	HotelPerNight      float64 `json:"hotel_per_night,omitempty"`
	TransportPerPerson float64 `json:"transport_per_person,omitempty"`
}

// TripDetails is the trip_details block of a search summary.
type TripDetails struct {
	Nights   int    `json:"nights"`
	Rooms    int    `json:"rooms"`
	People   int    `json:"people"`
	Origin   string `json:"origin,omitempty"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// PriceBreakdown is the minimum-cost baseline supplied by the search
// backend, used for any category the user has not selected yet.
type PriceBreakdown struct {
	HotelMin             float64 `json:"hotel_min"`
	TransportMin         float64 `json:"transport_min"`
	AttractionsEstimated float64 `json:"attractions_estimated"`
	Currency             string  `json:"currency"`
}

type Place struct {
	Name string `json:"name"`
}

// Summary is the pricing payload for one search: trip details, baseline
// prices, and display metadata.
type Summary struct {
	TripDetails    TripDetails    `json:"trip_details"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown"`
	Destination    *Place         `json:"destination,omitempty"`
	Origin         *Place         `json:"origin,omitempty"`
}

type HotelSelection struct {
	Name          string  `json:"name,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
}

type TransportSelection struct {
	Name           string  `json:"name,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
}

type AttractionSelection struct {
	Name           string  `json:"name,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
}

// SelectionSet is the user's live choices among search results. Nil or empty
// fields fall back to the breakdown minimums when quoting.
type SelectionSet struct {
	Hotel       *HotelSelection       `json:"hotel,omitempty"`
	Transport   *TransportSelection   `json:"transport,omitempty"`
	Attractions []AttractionSelection `json:"attractions,omitempty"`
}

// PlanRequest is the outbound contract to the plan-generation service.
type PlanRequest struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	TravelType      string `json:"travel_type"`
	HotelPreference string `json:"hotel_preference"`
	NumDays         int    `json:"num_days"`
	NumPeople       int    `json:"num_people"`
	Budget          int    `json:"budget"`
}

type Activity struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Description   string  `json:"description,omitempty"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type Day struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	DayTotal   float64    `json:"day_total,omitempty"`
}

type CostBreakdown struct {
	Hotel          float64 `json:"hotel"`
	Transport      float64 `json:"transport"`
	Attractions    float64 `json:"attractions"`
	EstimatedTotal float64 `json:"estimated_total"`
	Remaining      float64 `json:"remaining_budget,omitempty"`
}

// Plan is the generated itinerary. Consumers treat it as opaque except for
// rendering; missing nested fields simply render as absent.
type Plan struct {
	Origin        string         `json:"origin,omitempty"`
	Destination   string         `json:"destination"`
	TravelType    string         `json:"travel_type,omitempty"`
	Budget        int            `json:"budget"`
	NumDays       int            `json:"num_days"`
	NumPeople     int            `json:"num_people"`
	DailyBudget   int            `json:"daily_budget,omitempty"`
	Itinerary     []Day          `json:"itinerary"`
	Tips          []string       `json:"tips,omitempty"`
	CostBreakdown *CostBreakdown `json:"cost_breakdown,omitempty"`
}

// PlanResponse is the plan service envelope. Success false with no plan is a
// soft, retryable failure.
type PlanResponse struct {
	Success   bool   `json:"success"`
	Plan      *Plan  `json:"plan,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
