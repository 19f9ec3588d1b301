package pagination

import "math"

const (
	// DefaultSize is the page size used when the caller omits one.
	DefaultSize = 10
	// FeaturedLimit caps the featured listing strip.
	FeaturedLimit = 6
)

// Page is a zero-based offset page as supplied by the client.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows skipped before this page. A product that does
// not fit in an int saturates at math.MaxInt, which still selects an empty page.
func (p Page) Offset() int {
	if p.Number <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// Limit returns the page size, falling back to DefaultSize.
func (p Page) Limit() int {
	if p.Size <= 0 {
		return DefaultSize
	}
	return p.Size
}
