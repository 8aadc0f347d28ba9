package trip

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// DefaultTripDays is assumed when either date is missing or malformed.
const DefaultTripDays = 3

// TripDays returns the trip length in whole days for a check-in/check-out
// pair. Fractional days round up, reversed dates count the same as ordered
// ones, and a zero-length range still counts as one day.
func TripDays(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return DefaultTripDays
	}
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return DefaultTripDays
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return DefaultTripDays
	}

	diff := out.Sub(in)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}
