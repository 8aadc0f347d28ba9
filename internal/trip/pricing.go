package trip

// Quote is an itemized trip total. GrandTotal always equals the sum of the
// three category totals.
type Quote struct {
	HotelTotal       float64 `json:"hotel_total"`
	TransportTotal   float64 `json:"transport_total"`
	AttractionsTotal float64 `json:"attractions_total"`
	GrandTotal       float64 `json:"grand_total"`
	Currency         string  `json:"currency,omitempty"`
}

// BuildQuote combines a search summary with the user's live selections.
// Each category uses the selection's price when one exists and falls back
// to the breakdown minimum otherwise; absent inputs are never an error.
func BuildQuote(s Summary, sel SelectionSet) Quote {
	td := s.TripDetails

	hotelTotal := s.PriceBreakdown.HotelMin
	if sel.Hotel != nil {
		hotelTotal = sel.Hotel.PricePerNight * float64(td.Nights) * float64(td.Rooms)
	}

	transportTotal := s.PriceBreakdown.TransportMin
	if sel.Transport != nil {
		transportTotal = sel.Transport.PricePerPerson * float64(td.People)
	}

	attractionsTotal := s.PriceBreakdown.AttractionsEstimated
	if len(sel.Attractions) > 0 {
		attractionsTotal = 0
		for _, a := range sel.Attractions {
			attractionsTotal += a.PricePerPerson * float64(td.People)
		}
	}

	return Quote{
		HotelTotal:       hotelTotal,
		TransportTotal:   transportTotal,
		AttractionsTotal: attractionsTotal,
		GrandTotal:       hotelTotal + transportTotal + attractionsTotal,
		Currency:         s.PriceBreakdown.Currency,
	}
}
