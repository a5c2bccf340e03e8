package catalog

// PageSize is the fixed number of cards per result page
const PageSize = 20

// SearchCriteria holds the optional, conjunctive card filters plus the
// requested page. It is built once at the transport boundary and passed by
// value; zero fields mean "no constraint".
type SearchCriteria struct {
	Name     string
	TypeID   uint
	SetID    uint
	RarityID uint
	Page     int
}

// Normalized returns a copy with an always-valid page number. Malformed page
// parameters are corrected to the first page, never surfaced as errors.
func (c SearchCriteria) Normalized() SearchCriteria {
	if c.Page < 1 {
		c.Page = 1
	}
	return c
}

// CardPage is the paged list envelope returned by card searches
type CardPage struct {
	Cards      []CardProjection `json:"cards"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
}

// TotalPages computes the page count for a result total at the fixed page size
func TotalPages(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}
