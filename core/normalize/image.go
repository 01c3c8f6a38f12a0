package normalize

import (
	"encoding/json"

	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
)

// wireImage is the structured image object the API sends.
type wireImage struct {
	Original string `json:"original"`
	Cropped  *struct {
		Thumb    string `json:"thumb"`
		Medium   string `json:"medium"`
		Large    string `json:"large"`
		Square   string `json:"square"`
		Vertical string `json:"vertical"`
		Fives    string `json:"fives"`
	} `json:"cropped"`
}

// Image normalizes an image field that may be a bare URL string or a
// structured object. A string yields a set where every variant is that URL.
// An object is taken verbatim, either in the API's {original, cropped} shape
// or in the canonical ImageSet shape, so normalizing twice is a no-op.
//
// When required is false every failure degrades to (nil, nil).
func Image(raw json.RawMessage, field string, required bool) (*domain.ImageSet, error) {
	set, err := decodeImage(raw, field)
	if err != nil {
		if required {
			return nil, err
		}
		return nil, nil
	}
	return set, nil
}

func decodeImage(raw json.RawMessage, field string) (*domain.ImageSet, error) {
	if !present(raw) {
		return nil, coreerrors.Missing(field)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil, coreerrors.Missing(field)
		}
		set := domain.SingleImage(s)
		return &set, nil
	}

	set, err := imageObject(raw)
	if err != nil {
		return nil, coreerrors.Malformed(field, err)
	}
	if set.URL() == "" {
		return nil, coreerrors.Missing(field)
	}
	return set, nil
}

func imageObject(raw json.RawMessage) (*domain.ImageSet, error) {
	var f Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	if f.Has("cropped") {
		var w wireImage
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &domain.ImageSet{
			Original:  w.Original,
			Thumbnail: w.Cropped.Thumb,
			Medium:    w.Cropped.Medium,
			Large:     w.Cropped.Large,
			Square:    w.Cropped.Square,
			Vertical:  w.Cropped.Vertical,
			Wide:      w.Cropped.Fives,
		}, nil
	}

	var set domain.ImageSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// Headline normalizes a headline image: string form first, then object form,
// else nil. It never fails; headlines are decorative.
func Headline(raw json.RawMessage) *domain.HeadlineImage {
	if !present(raw) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		h := domain.StringHeadline(s)
		return &h
	}

	set, err := imageObject(raw)
	if err != nil || set.URL() == "" {
		return nil
	}
	h := domain.ObjectHeadline(*set)
	return &h
}

// HeadlineBlock normalizes a post's {name, image} headline object. A block
// without a name is dropped.
func HeadlineBlock(raw json.RawMessage) *domain.Headline {
	f, err := Object(raw, "headline")
	if err != nil {
		return nil
	}
	name, err := f.String("name")
	if err != nil {
		return nil
	}
	return &domain.Headline{Name: name, Image: Headline(f["image"])}
}
