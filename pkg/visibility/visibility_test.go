package visibility

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
)

func TestHiddenStates(t *testing.T) {
	got := HiddenStates()
	if len(got) != 2 || got[0] != string(enums.AvailabilityReserved) || got[1] != string(enums.AvailabilityNotAvailable) {
		t.Fatalf("unexpected hidden states %v", got)
	}
}

func TestDiscoverableScope(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	stmt := conn.Model(&models.FoodListing{}).Scopes(Discoverable).Find(&[]models.FoodListing{}).Statement
	sql := stmt.SQL.String()
	if !strings.Contains(sql, "availability NOT IN") {
		t.Fatalf("expected availability filter in %q", sql)
	}
	bound := fmt.Sprint(stmt.Vars...)
	for _, state := range HiddenStates() {
		if !strings.Contains(bound, state) {
			t.Fatalf("expected %q bound, got %v", state, stmt.Vars)
		}
	}
}
