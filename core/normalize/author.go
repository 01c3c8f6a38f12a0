package normalize

import (
	"encoding/json"

	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
)

// Author normalizes an optional author object. An absent author, or a value
// that is not an object, yields nil. A present object must carry a name; its
// id may be absent or null.
func Author(raw json.RawMessage) (*domain.ContentAuthor, error) {
	if !present(raw) {
		return nil, nil
	}
	var f Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil
	}

	name, err := f.String("name")
	if err != nil {
		return nil, &coreerrors.DecodeError{Field: "author.name", Reason: coreerrors.MissingRequiredField, Cause: err}
	}
	return &domain.ContentAuthor{ID: f.OptionalInt("id"), Name: name}, nil
}

// AuthorDetail normalizes an entry of the authors listing.
func AuthorDetail(f Fields) (domain.AuthorDetail, error) {
	id, err := f.Int("id")
	if err != nil {
		return domain.AuthorDetail{}, err
	}
	name, err := f.String("name")
	if err != nil {
		return domain.AuthorDetail{}, err
	}
	img, _ := Image(f["image"], "image", false)

	return domain.AuthorDetail{
		ID:          id,
		Name:        name,
		Image:       img,
		Slug:        f.OptionalString("slug"),
		Description: f.OptionalString("description"),
		Bio:         f.OptionalString("bio"),
	}, nil
}

// AuthorArticle normalizes an entry of an author's article list.
func AuthorArticle(f Fields) (domain.AuthorArticle, error) {
	id, err := f.Int("id")
	if err != nil {
		return domain.AuthorArticle{}, err
	}
	name, err := f.String("name")
	if err != nil {
		return domain.AuthorArticle{}, err
	}
	img, _ := Image(f["image"], "image", false)
	return domain.AuthorArticle{ID: id, Name: name, Image: img}, nil
}
