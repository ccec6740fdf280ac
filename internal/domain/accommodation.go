package domain

import "net/url"

// Accommodation is a lodging booking associated with a trip.
// Cost is a single lump sum for the whole stay, not a nightly rate.
type Accommodation struct {
	ID          string  `json:"id"`
	HotelName   string  `json:"hotel_name"`
	Address     string  `json:"address"`
	CheckIn     string  `json:"check_in"`  // date-only, YYYY-MM-DD
	CheckOut    string  `json:"check_out"` // date-only, YYYY-MM-DD
	BookingRef  string  `json:"booking_ref,omitempty"`
	Cost        float64 `json:"cost"`
	ContactInfo string  `json:"contact_info,omitempty"`
}

// MapURL returns a Google Maps search deep link for the accommodation's
// address. Pure URL construction, no network call.
func (a *Accommodation) MapURL() string {
	if a.Address == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(a.Address)
}
