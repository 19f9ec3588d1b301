package enums

import (
	"fmt"
	"strings"
)

// Availability gates whether a listing shows up on the discovery endpoints.
type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityReserved     Availability = "Reserved"
	AvailabilityNotAvailable Availability = "Not Available"
)

var validAvailabilities = []Availability{
	AvailabilityAvailable,
	AvailabilityReserved,
	AvailabilityNotAvailable,
}

// HiddenFromDiscovery lists the states excluded from featured, list, search and sorted views.
var HiddenFromDiscovery = []Availability{
	AvailabilityReserved,
	AvailabilityNotAvailable,
}

// String implements fmt.Stringer.
func (a Availability) String() string {
	return string(a)
}

// Discoverable reports whether listings in this state appear on public discovery endpoints.
func (a Availability) Discoverable() bool {
	for _, hidden := range HiddenFromDiscovery {
		if hidden == a {
			return false
		}
	}
	return true
}

// ParseAvailability converts raw input into an Availability. Matching ignores case and
// surrounding whitespace so "not available" resolves to AvailabilityNotAvailable.
func ParseAvailability(value string) (Availability, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validAvailabilities {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid availability %q", value)
}
