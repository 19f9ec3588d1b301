package instance

import (
	"os"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/env"
)

// GetID identifies the running API process in logs: an explicit id, the platform
// dyno name, then the hostname.
func GetID() string {
	if id := env.First("RUPOSHI_INSTANCE_ID", "DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
