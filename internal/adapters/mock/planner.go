package mock

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/wanderbot/trip-cli/internal/core"
	"github.com/wanderbot/trip-cli/internal/trip"
)

// MockPlannerAdapter generates itineraries from travel-type activity
// templates. No AI backend required; output is deterministic per request.
type MockPlannerAdapter struct{}

func NewMockPlannerAdapter() *MockPlannerAdapter {
	return &MockPlannerAdapter{}
}

func (a *MockPlannerAdapter) Name() string            { return "mock_planner" }
func (a *MockPlannerAdapter) Tier() core.ProviderTier { return core.TierEasySignup }
func (a *MockPlannerAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapPlanGenerate, core.CapTravelTypes}
}
func (a *MockPlannerAdapter) Available() (bool, string) { return true, "" }

type travelTypeConfig struct {
	Description string
	Morning     []string
	Afternoon   []string
	Evening     []string
}

var travelTypeConfigs = map[string]travelTypeConfig{
	"nature": {
		Description: "outdoor activities, hiking, beaches, national parks, wildlife",
		Morning: []string{
			"Start the day with a scenic nature walk",
			"Early morning hike to catch the sunrise",
			"Visit a local botanical garden",
			"Explore a nearby nature reserve",
			"Morning bird watching tour",
		},
		Afternoon: []string{
			"Picnic lunch at a scenic viewpoint",
			"Kayaking or paddleboarding adventure",
			"Wildlife safari or nature tour",
			"Beach relaxation and swimming",
			"Visit a national park trail",
		},
		Evening: []string{
			"Sunset watching at a scenic spot",
			"Stargazing experience",
			"Campfire dinner experience",
			"Evening nature documentary at visitor center",
			"Relaxing spa treatment",
		},
	},
	"culture": {
		Description: "museums, historical sites, architecture, local traditions",
		Morning: []string{
			"Visit the city's main museum",
			"Walking tour of historical district",
			"Explore ancient architecture",
			"Morning at an art gallery",
			"Visit a UNESCO World Heritage site",
		},
		Afternoon: []string{
			"Guided tour of local landmarks",
			"Traditional craft workshop",
			"Explore local markets and bazaars",
			"Visit historical monuments",
			"Architecture photography walk",
		},
		Evening: []string{
			"Traditional cultural performance",
			"Dinner at a heritage restaurant",
			"Night tour of illuminated monuments",
			"Local music and dance show",
			"Evening stroll through old town",
		},
	},
	"food": {
		Description: "local cuisine, food tours, cooking classes, markets",
		Morning: []string{
			"Visit a local breakfast market",
			"Morning cooking class with locals",
			"Coffee tasting tour",
			"Fresh produce market exploration",
			"Bakery and pastry tour",
		},
		Afternoon: []string{
			"Street food walking tour",
			"Wine or beer tasting experience",
			"Visit local food producers",
			"Cooking workshop with chef",
			"Food photography tour",
		},
		Evening: []string{
			"Fine dining at top-rated restaurant",
			"Food and wine pairing dinner",
			"Night market food exploration",
			"Rooftop dining with views",
			"Traditional dinner with local family",
		},
	},
	"adventure": {
		Description: "extreme sports, water activities, mountain climbing",
		Morning: []string{
			"Early morning mountain trek",
			"Scuba diving or snorkeling",
			"Rock climbing adventure",
			"Zip-lining through forest",
			"White water rafting",
		},
		Afternoon: []string{
			"Paragliding experience",
			"Mountain biking tour",
			"Canyoning adventure",
			"Surfing lessons",
			"ATV or quad biking",
		},
		Evening: []string{
			"Night diving experience",
			"Camping under the stars",
			"Adventure stories at local bar",
			"Planning next day's adventure",
			"Recovery massage and dinner",
		},
	},
	"relaxation": {
		Description: "spa, resorts, quiet beaches, wellness retreats",
		Morning: []string{
			"Sunrise yoga session",
			"Morning meditation class",
			"Leisurely breakfast by the pool",
			"Gentle beach walk",
			"Morning spa treatment",
		},
		Afternoon: []string{
			"Full body massage and spa",
			"Pool or beach relaxation",
			"Wellness workshop",
			"Aromatherapy session",
			"Reading by the ocean",
		},
		Evening: []string{
			"Sunset cocktails",
			"Fine dining experience",
			"Evening meditation",
			"Starlit hot tub soak",
			"Live music at resort",
		},
	},
}

var generalTips = []string{
	"Best time to visit %s: check local weather patterns",
	"Download offline maps before your trip",
	"Keep emergency contact numbers handy",
	"Try local cuisine for authentic experiences",
	"Book popular attractions in advance",
}

var typeTips = map[string][]string{
	"nature": {
		"Pack layers for changing weather",
		"Bring a reusable water bottle",
		"Wear comfortable hiking shoes",
		"Carry sunscreen and insect repellent",
	},
	"culture": {
		"Research local customs before visiting",
		"Dress modestly when visiting religious sites",
		"Consider hiring a local guide",
		"Visit museums on weekday mornings to avoid crowds",
	},
	"food": {
		"Ask locals for restaurant recommendations",
		"Try street food for authentic flavors",
		"Book popular restaurants in advance",
		"Take a cooking class to learn local recipes",
	},
	"adventure": {
		"Check equipment safety before activities",
		"Get travel insurance that covers adventure sports",
		"Stay hydrated during physical activities",
		"Know your limits and listen to guides",
	},
	"relaxation": {
		"Book spa treatments in advance",
		"Bring a good book or download podcasts",
		"Disconnect from work emails",
		"Try local wellness practices",
	},
}

// Nominal nightly rates per hotel preference, used for the cost breakdown.
var hotelNightlyRates = map[string]float64{
	"budget":    80,
	"mid-range": 150,
	"luxury":    300,
}

const transportPerPerson = 300

func (a *MockPlannerAdapter) GeneratePlan(ctx context.Context, req trip.PlanRequest) (*trip.PlanResponse, error) {
	if req.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	numDays := req.NumDays
	if numDays < 1 {
		numDays = trip.DefaultTripDays
	}
	numPeople := req.NumPeople
	if numPeople < 1 {
		numPeople = trip.DefaultPeople
	}

	types := splitTravelTypes(req.TravelType)
	rng := rand.New(rand.NewSource(hashSeed(req.Destination + req.TravelType + strconv.Itoa(numDays))))
	merged := mergeTravelConfigs(types, rng)

	dailyBudget := 0
	if req.Budget > 0 {
		dailyBudget = req.Budget / numDays
	}

	itinerary := buildItinerary(req.Origin, req.Destination, types[0], merged, numDays, dailyBudget)

	nightly, ok := hotelNightlyRates[req.HotelPreference]
	if !ok {
		nightly = hotelNightlyRates[trip.DefaultHotelPreference]
	}
	hotelCost := nightly * float64(numDays)
	transportCost := float64(transportPerPerson * numPeople)

	var activitiesCost float64
	for _, day := range itinerary {
		activitiesCost += day.DayTotal
	}

	plan := &trip.Plan{
		Origin:      req.Origin,
		Destination: req.Destination,
		TravelType:  req.TravelType,
		Budget:      req.Budget,
		NumDays:     numDays,
		NumPeople:   numPeople,
		DailyBudget: dailyBudget,
		Itinerary:   itinerary,
		Tips:        buildTips(req.Destination, types[0]),
		CostBreakdown: &trip.CostBreakdown{
			Hotel:          hotelCost,
			Transport:      transportCost,
			Attractions:    activitiesCost,
			EstimatedTotal: hotelCost + transportCost + activitiesCost,
			Remaining:      float64(req.Budget) - (hotelCost + transportCost + activitiesCost),
		},
	}

	return &trip.PlanResponse{Success: true, Plan: plan}, nil
}

// TravelTypeInfo describes one supported experience type.
type TravelTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func TravelTypes() []TravelTypeInfo {
	ids := []string{"nature", "culture", "food", "adventure", "relaxation"}
	infos := make([]TravelTypeInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, TravelTypeInfo{
			ID:          id,
			Name:        strings.ToUpper(id[:1]) + id[1:],
			Description: travelTypeConfigs[id].Description,
		})
	}
	return infos
}

func splitTravelTypes(travelType string) []string {
	var types []string
	for _, t := range strings.Split(travelType, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := travelTypeConfigs[t]; ok {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		types = []string{"culture"}
	}
	return types
}

func mergeTravelConfigs(types []string, rng *rand.Rand) travelTypeConfig {
	var merged travelTypeConfig
	var descriptions []string
	for _, t := range types {
		cfg := travelTypeConfigs[t]
		descriptions = append(descriptions, cfg.Description)
		merged.Morning = append(merged.Morning, cfg.Morning...)
		merged.Afternoon = append(merged.Afternoon, cfg.Afternoon...)
		merged.Evening = append(merged.Evening, cfg.Evening...)
	}
	merged.Description = strings.Join(descriptions, "; ")

	// Mix activities from the different types.
	rng.Shuffle(len(merged.Morning), func(i, j int) { merged.Morning[i], merged.Morning[j] = merged.Morning[j], merged.Morning[i] })
	rng.Shuffle(len(merged.Afternoon), func(i, j int) { merged.Afternoon[i], merged.Afternoon[j] = merged.Afternoon[j], merged.Afternoon[i] })
	rng.Shuffle(len(merged.Evening), func(i, j int) { merged.Evening[i], merged.Evening[j] = merged.Evening[j], merged.Evening[i] })

	return merged
}

func buildItinerary(origin, destination, primaryType string, cfg travelTypeConfig, numDays, dailyBudget int) []trip.Day {
	itinerary := make([]trip.Day, 0, numDays)

	for day := 1; day <= numDays; day++ {
		plan := trip.Day{
			Day:   day,
			Title: fmt.Sprintf("Day %d in %s", day, destination),
		}

		morning := trip.Activity{Time: "Morning (9:00 AM)"}
		if day == 1 {
			from := origin
			if from == "" {
				from = "your city"
			}
			morning.Activity = fmt.Sprintf("Arrive in %s", destination)
			morning.Description = fmt.Sprintf("Travel from %s to %s. Check into your hotel and freshen up.", from, destination)
		} else {
			morning.Activity = pick(cfg.Morning, day)
			morning.Description = fmt.Sprintf("Start your day with this %s experience", primaryType)
		}
		morning.EstimatedCost = float64(dailyBudget) * 0.2
		plan.Activities = append(plan.Activities, morning)

		afternoon := trip.Activity{
			Time:          "Afternoon (2:00 PM)",
			Activity:      pick(cfg.Afternoon, day),
			Description:   fmt.Sprintf("Enjoy %s activities in %s", primaryType, destination),
			EstimatedCost: float64(dailyBudget) * 0.3,
		}
		plan.Activities = append(plan.Activities, afternoon)

		evening := trip.Activity{Time: "Evening (7:00 PM)"}
		if day == numDays {
			evening.Activity = "Prepare for departure"
			evening.Description = "Pack your bags, enjoy a final dinner, and prepare for your journey home"
			evening.EstimatedCost = float64(dailyBudget) * 0.2
		} else {
			evening.Activity = pick(cfg.Evening, day)
			evening.Description = fmt.Sprintf("End your day with a memorable %s experience", primaryType)
			evening.EstimatedCost = float64(dailyBudget) * 0.3
		}
		plan.Activities = append(plan.Activities, evening)

		for _, act := range plan.Activities {
			plan.DayTotal += act.EstimatedCost
		}

		itinerary = append(itinerary, plan)
	}

	return itinerary
}

// pick walks a pre-shuffled pool so consecutive days do not repeat until
// the pool wraps.
func pick(pool []string, day int) string {
	if len(pool) == 0 {
		return "Free time to explore"
	}
	return pool[(day-1)%len(pool)]
}

func buildTips(destination, primaryType string) []string {
	tips := []string{
		fmt.Sprintf(generalTips[0], destination),
		generalTips[1],
		generalTips[2],
	}
	if extra, ok := typeTips[primaryType]; ok && len(extra) >= 2 {
		tips = append(tips, extra[:2]...)
	}
	return tips
}

func hashSeed(s string) int64 {
	var h int64
	for _, c := range s {
		h = h*31 + int64(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}
