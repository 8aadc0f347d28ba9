package trip

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseCriteria decodes search criteria from a search-form query string
// (origin, destination, checkIn, checkOut, people, rooms, budget). Counts
// default to 2 people and 1 room; destination is required.
func ParseCriteria(query string) (SearchCriteria, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return SearchCriteria{}, fmt.Errorf("parse query: %w", err)
	}
	return CriteriaFromValues(values)
}

func CriteriaFromValues(values url.Values) (SearchCriteria, error) {
	c := SearchCriteria{
		Origin:      strings.TrimSpace(values.Get("origin")),
		Destination: strings.TrimSpace(values.Get("destination")),
		CheckIn:     values.Get("checkIn"),
		CheckOut:    values.Get("checkOut"),
		People:      intValue(values.Get("people"), DefaultPeople),
		Rooms:       intValue(values.Get("rooms"), DefaultRooms),
		Budget:      intValue(values.Get("budget"), 0),
	}
	if c.Destination == "" {
		return SearchCriteria{}, fmt.Errorf("destination is required")
	}
	if c.People < 1 {
		c.People = DefaultPeople
	}
	if c.Rooms < 1 {
		c.Rooms = DefaultRooms
	}
	return c, nil
}

func intValue(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
