package visibility

import (
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
)

// HiddenStates returns the availability values excluded from public discovery queries.
func HiddenStates() []string {
	out := make([]string, 0, len(enums.HiddenFromDiscovery))
	for _, state := range enums.HiddenFromDiscovery {
		out = append(out, string(state))
	}
	return out
}

// Discoverable is a gorm scope so reserved or withdrawn listings never leak through
// featured, count, list, search or sorted views.
func Discoverable(db *gorm.DB) *gorm.DB {
	return db.Where("availability NOT IN ?", HiddenStates())
}
