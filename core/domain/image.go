// ABOUTME: Image domain models for pre-cropped image variants and headline images
// ABOUTME: ImageSet always resolves to at least one usable URL

package domain

// ImageSet is an image with its pre-cropped variants.
// When the source only supplied a bare URL every variant aliases that URL.
type ImageSet struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
	Large     string `json:"large"`
	Square    string `json:"square"`
	Vertical  string `json:"vertical"`
	Wide      string `json:"wide"`
}

// SingleImage returns an ImageSet where every variant is url.
func SingleImage(url string) ImageSet {
	return ImageSet{
		Original:  url,
		Thumbnail: url,
		Medium:    url,
		Large:     url,
		Square:    url,
		Vertical:  url,
		Wide:      url,
	}
}

// URL returns the best display URL: large, then medium, then original, then
// the first non-empty crop.
func (s ImageSet) URL() string {
	for _, u := range []string{s.Large, s.Medium, s.Original, s.Wide, s.Square, s.Vertical, s.Thumbnail} {
		if u != "" {
			return u
		}
	}
	return ""
}

// IsAliased reports whether every variant is the same single URL.
func (s ImageSet) IsAliased() bool {
	return s == SingleImage(s.Original)
}

// HeadlineImageForm tags which wire shape a headline image arrived in.
type HeadlineImageForm int

const (
	// HeadlineString is a bare URL string.
	HeadlineString HeadlineImageForm = iota
	// HeadlineObject is a structured image object with crops.
	HeadlineObject
)

// HeadlineImage is the sum of the two shapes a headline image may take.
type HeadlineImage struct {
	Form   HeadlineImageForm `json:"form"`
	URL    string            `json:"url,omitempty"`
	Object *ImageSet         `json:"object,omitempty"`
}

// StringHeadline builds the string form.
func StringHeadline(url string) HeadlineImage {
	return HeadlineImage{Form: HeadlineString, URL: url}
}

// ObjectHeadline builds the object form.
func ObjectHeadline(set ImageSet) HeadlineImage {
	return HeadlineImage{Form: HeadlineObject, Object: &set}
}

// ImageSet returns the object form verbatim, or the string form aliased to
// every variant. It never invents crops.
func (h HeadlineImage) ImageSet() ImageSet {
	if h.Form == HeadlineObject && h.Object != nil {
		return *h.Object
	}
	return SingleImage(h.URL)
}

// Headline is the decorative headline block attached to a post.
type Headline struct {
	Name  string         `json:"name"`
	Image *HeadlineImage `json:"image,omitempty"`
}
