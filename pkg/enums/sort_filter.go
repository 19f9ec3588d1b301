package enums

import (
	"fmt"
	"strings"
)

// SortFilter selects the ordering used by the paginated time-sort endpoint.
type SortFilter string

const (
	// SortFilterExpiry orders by expiry, latest first.
	SortFilterExpiry SortFilter = "time"
	// SortFilterQuantity orders by quantity, largest first.
	SortFilterQuantity SortFilter = "quantity"
)

var validSortFilters = []SortFilter{
	SortFilterExpiry,
	SortFilterQuantity,
}

// String implements fmt.Stringer.
func (f SortFilter) String() string {
	return string(f)
}

// ParseSortFilter converts raw input into a SortFilter.
func ParseSortFilter(value string) (SortFilter, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validSortFilters {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort filter %q", value)
}
