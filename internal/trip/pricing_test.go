package trip

import "testing"

func testSummary() Summary {
	return Summary{
		TripDetails: TripDetails{
			Nights:   3,
			Rooms:    2,
			People:   2,
			CheckIn:  "2026-06-12",
			CheckOut: "2026-06-15",
		},
		PriceBreakdown: PriceBreakdown{
			HotelMin:             240,
			TransportMin:         120,
			AttractionsEstimated: 60,
			Currency:             "USD",
		},
	}
}

func TestBuildQuote_NoSelections_UsesMinimums(t *testing.T) {
	q := BuildQuote(testSummary(), SelectionSet{})

	if q.HotelTotal != 240 || q.TransportTotal != 120 || q.AttractionsTotal != 60 {
		t.Errorf("expected breakdown minimums, got %+v", q)
	}
	if q.GrandTotal != 420 {
		t.Errorf("expected grand total 420, got %f", q.GrandTotal)
	}
}

func TestBuildQuote_SelectedHotel_OverridesMinimum(t *testing.T) {
	sel := SelectionSet{Hotel: &HotelSelection{PricePerNight: 200}}

	q := BuildQuote(testSummary(), sel)

	// 200/night * 3 nights * 2 rooms, regardless of hotel_min.
	if q.HotelTotal != 1200 {
		t.Errorf("expected hotel total 1200, got %f", q.HotelTotal)
	}
}

func TestBuildQuote_SelectedTransport_PerPerson(t *testing.T) {
	sel := SelectionSet{Transport: &TransportSelection{PricePerPerson: 75}}

	q := BuildQuote(testSummary(), sel)

	if q.TransportTotal != 150 {
		t.Errorf("expected transport total 150, got %f", q.TransportTotal)
	}
}

func TestBuildQuote_SelectedAttractions_SumPerPerson(t *testing.T) {
	sel := SelectionSet{
		Attractions: []AttractionSelection{
			{PricePerPerson: 25},
			{PricePerPerson: 40},
		},
	}

	q := BuildQuote(testSummary(), sel)

	// (25 + 40) * 2 people.
	if q.AttractionsTotal != 130 {
		t.Errorf("expected attractions total 130, got %f", q.AttractionsTotal)
	}
}

func TestBuildQuote_GrandTotalInvariant(t *testing.T) {
	sel := SelectionSet{
		Hotel:     &HotelSelection{PricePerNight: 180},
		Transport: &TransportSelection{PricePerPerson: 60},
		Attractions: []AttractionSelection{
			{PricePerPerson: 15},
		},
	}

	q := BuildQuote(testSummary(), sel)

	if q.GrandTotal != q.HotelTotal+q.TransportTotal+q.AttractionsTotal {
		t.Errorf("grand total %f does not equal component sum", q.GrandTotal)
	}
	if q.Currency != "USD" {
		t.Errorf("expected currency USD, got %s", q.Currency)
	}
}
