// ABOUTME: Query session state models observed by the view layer
// ABOUTME: SearchSession tags attempts with a generation; PaginationCursor tracks load-more

package domain

// SearchSession identifies one query attempt on a search surface.
type SearchSession struct {
	Query      string `json:"query"`
	Generation uint64 `json:"generation"`
	Cancelled  bool   `json:"cancelled"`
}

// ListingMode selects between the plain listing and a search listing.
type ListingMode struct {
	// Query is empty for the plain listing.
	Query string `json:"query,omitempty"`
}

// IsSearch reports whether the mode is a search.
func (m ListingMode) IsSearch() bool {
	return m.Query != ""
}

// PaginationCursor is the load-more state of a list surface.
type PaginationCursor struct {
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	HasMore  bool        `json:"has_more"`
	Mode     ListingMode `json:"mode"`
}

// NewCursor returns a cursor at page 1 for mode.
func NewCursor(pageSize int, mode ListingMode) PaginationCursor {
	return PaginationCursor{Page: 1, PageSize: pageSize, HasMore: true, Mode: mode}
}
