// ABOUTME: Response bodies for the HTTP surface
// ABOUTME: Wrap canonical domain records with paging and status metadata

package responses

import (
	"newsreader-core/core/domain"
	"newsreader-core/core/home"
)

// DestinationResponse is a resolved deep link
type DestinationResponse struct {
	Kind domain.ContentKind `json:"kind" doc:"Content kind" example:"video"`
	ID   int                `json:"id" doc:"Content id" example:"42"`
}

// ContentListResponse is a list of content references
type ContentListResponse struct {
	Query string                    `json:"query,omitempty"`
	Count int                       `json:"count"`
	Items []domain.ContentReference `json:"items"`
}

// AuthorsResponse is one page of authors
type AuthorsResponse struct {
	Page    int                   `json:"page"`
	PerPage int                   `json:"per_page"`
	HasMore bool                  `json:"has_more"`
	Authors []domain.AuthorDetail `json:"authors"`
}

// HomeResponse is the home screen with per-section failures listed
type HomeResponse struct {
	Sections map[home.Section][]domain.ContentReference `json:"sections"`
	Failed   []home.Section                             `json:"failed,omitempty"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version"`
}
