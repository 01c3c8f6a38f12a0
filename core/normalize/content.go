package normalize

import (
	"newsreader-core/core/domain"
)

// referenceRules says which optional-on-the-wire fields a record kind requires.
type referenceRules struct {
	kind          domain.ContentKind
	slugRequired  bool
	imageRequired bool
}

func reference(f Fields, rules referenceRules) (domain.ContentReference, error) {
	ref := domain.ContentReference{Kind: rules.kind}

	id, err := f.Int("id")
	if err != nil {
		return ref, err
	}
	name, err := f.String("name")
	if err != nil {
		return ref, err
	}
	created, err := f.String("created_at")
	if err != nil {
		return ref, err
	}

	if rules.slugRequired {
		slug, err := f.String("slug")
		if err != nil {
			return ref, err
		}
		ref.Slug = &slug
	} else {
		ref.Slug = f.StringPtr("slug")
	}

	img, err := Image(f["image"], "image", rules.imageRequired)
	if err != nil {
		return ref, err
	}
	if img != nil {
		ref.Image = *img
	}

	author, err := Author(f["author"])
	if err != nil {
		return ref, err
	}

	ref.ID = id
	ref.Name = name
	ref.CreatedAt = created
	ref.Author = author
	ref.Description = f.OptionalString("description")
	ref.URL = f.OptionalString("url")
	ref.DirectLink = f.OptionalString("direct_link")
	ref.Categories = f.StringMap("categories")
	ref.Headline = HeadlineBlock(f["headline"])
	ref.HeadlineImage = Headline(f["headline_image"])
	ref.UpdatedAt = f.OptionalString("updated_at")
	return ref, nil
}

func common(f Fields, contentRequired bool) (domain.DetailCommon, error) {
	d := domain.DetailCommon{
		Tags:     f.Strings("tags"),
		Hit:      f.IntOr("hit", 0),
		Source:   f.OptionalString("source"),
		Reporter: f.OptionalString("reporter"),
	}
	if contentRequired {
		content, err := f.String("content")
		if err != nil {
			return d, err
		}
		d.Content = content
	} else {
		d.Content = f.OptionalString("content")
	}
	return d, nil
}

// Post normalizes a post list item.
func Post(f Fields) (domain.ContentReference, error) {
	return reference(f, referenceRules{kind: domain.KindPost, slugRequired: true, imageRequired: true})
}

// Video normalizes a video list item.
func Video(f Fields) (domain.ContentReference, error) {
	return reference(f, referenceRules{kind: domain.KindVideo, slugRequired: true, imageRequired: true})
}

// Gallery normalizes a gallery list item.
func Gallery(f Fields) (domain.ContentReference, error) {
	return reference(f, referenceRules{kind: domain.KindGallery, slugRequired: true, imageRequired: true})
}

// Article normalizes an author article list item. Articles carry neither a
// required slug nor a required image.
func Article(f Fields) (domain.ContentReference, error) {
	return reference(f, referenceRules{kind: domain.KindArticle})
}

// ForKind returns the list decoder for kind.
func ForKind(kind domain.ContentKind) func(Fields) (domain.ContentReference, error) {
	switch kind {
	case domain.KindVideo:
		return Video
	case domain.KindGallery:
		return Gallery
	case domain.KindArticle:
		return Article
	default:
		return Post
	}
}

// PostDetail normalizes a full post.
func PostDetail(f Fields) (domain.PostDetail, error) {
	ref, err := Post(f)
	if err != nil {
		return domain.PostDetail{}, err
	}
	c, err := common(f, true)
	if err != nil {
		return domain.PostDetail{}, err
	}

	var flags domain.PostFlags
	if add, err := Object(f["additional"], "additional"); err == nil {
		flags = domain.PostFlags{
			CommentsOff:          add.Flag("comments_off"),
			HideHeadline:         add.Flag("hide_headline"),
			HideHeadlineCategory: add.Flag("hide_headline_category"),
		}
	}

	return domain.PostDetail{
		ContentReference: ref,
		DetailCommon:     c,
		Position:         f.Strings("position"),
		Agency:           f.OptionalString("agency"),
		Embed:            f.OptionalString("embed"),
		Video:            f.OptionalString("video"),
		Flags:            flags,
		PreviousID:       f.OptionalInt("previous_id"),
		NextID:           f.OptionalInt("next_id"),
	}, nil
}

// VideoDetail normalizes a full video and derives its YouTube id from the embed.
func VideoDetail(f Fields) (domain.VideoDetail, error) {
	ref, err := Video(f)
	if err != nil {
		return domain.VideoDetail{}, err
	}
	c, err := common(f, false)
	if err != nil {
		return domain.VideoDetail{}, err
	}

	embed := f.OptionalString("embed")
	return domain.VideoDetail{
		ContentReference: ref,
		DetailCommon:     c,
		Embed:            embed,
		MediaURL:         f.OptionalString("media_url"),
		YouTubeID:        YouTubeID(embed),
	}, nil
}

// GalleryDetail normalizes a full gallery. Photos without an image are dropped.
func GalleryDetail(f Fields) (domain.GalleryDetail, error) {
	ref, err := Gallery(f)
	if err != nil {
		return domain.GalleryDetail{}, err
	}
	c, err := common(f, false)
	if err != nil {
		return domain.GalleryDetail{}, err
	}

	photos, _, err := List(f["photos"], "photos", galleryPhoto)
	if err != nil {
		photos = []domain.GalleryPhoto{}
	}

	return domain.GalleryDetail{
		ContentReference: ref,
		DetailCommon:     c,
		Photos:           photos,
	}, nil
}

func galleryPhoto(f Fields) (domain.GalleryPhoto, error) {
	img, err := f.String("img")
	if err != nil {
		return domain.GalleryPhoto{}, err
	}
	return domain.GalleryPhoto{Image: img, Description: f.OptionalString("description")}, nil
}

// ArticleDetail normalizes a full author article.
func ArticleDetail(f Fields) (domain.ArticleDetail, error) {
	ref, err := Article(f)
	if err != nil {
		return domain.ArticleDetail{}, err
	}
	c, err := common(f, true)
	if err != nil {
		return domain.ArticleDetail{}, err
	}
	return domain.ArticleDetail{
		ContentReference: ref,
		DetailCommon:     c,
		HasImage:         ref.Image.URL() != "",
	}, nil
}
