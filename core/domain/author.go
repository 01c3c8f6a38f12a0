package domain

// AuthorDetail is a columnist as listed on the authors page.
type AuthorDetail struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Image       *ImageSet `json:"image,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description,omitempty"`
	Bio         string    `json:"bio,omitempty"`
}

// ImageURL returns the large crop or "".
func (a AuthorDetail) ImageURL() string {
	if a.Image == nil {
		return ""
	}
	return a.Image.Large
}

// AuthorArticle is one entry of an author's article list.
type AuthorArticle struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Image *ImageSet `json:"image,omitempty"`
}
