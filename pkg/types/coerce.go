package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FlexInt decodes a JSON number or a numeric string. Browser forms post quantities as
// strings. Only whole numbers within the int32 range are accepted.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	var n float64
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", raw)
		}
		n = parsed
	} else if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	v, err := wholeInt32(n)
	if err != nil {
		return err
	}
	*f = FlexInt(v)
	return nil
}

func wholeInt32(n float64) (int32, error) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return 0, fmt.Errorf("number must be finite")
	case n != math.Trunc(n):
		return 0, fmt.Errorf("number %v must be a whole number", n)
	case n < math.MinInt32 || n > math.MaxInt32:
		return 0, fmt.Errorf("number %v is out of range", n)
	}
	return int32(n), nil
}

var flexTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FlexTime decodes RFC 3339 timestamps as well as the zone-less values produced by
// datetime-local inputs, which are read as UTC. It encodes as RFC 3339.
type FlexTime struct {
	time.Time
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		f.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseFlexTime(raw)
	if err != nil {
		return err
	}
	f.Time = parsed
	return nil
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.UTC().Format(time.RFC3339))
}

// Ptr returns nil for the zero time so optional columns stay NULL.
func (f FlexTime) Ptr() *time.Time {
	if f.IsZero() {
		return nil
	}
	t := f.UTC()
	return &t
}

// FlexTimeFrom wraps an optional timestamp.
func FlexTimeFrom(t *time.Time) FlexTime {
	if t == nil {
		return FlexTime{}
	}
	return FlexTime{Time: t.UTC()}
}

// ParseFlexTime parses raw with the accepted layouts; blank input yields the zero time.
func ParseFlexTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}
