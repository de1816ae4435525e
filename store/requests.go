package store

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostRequest describes a new post file. Slug is optional: when empty it
// is derived from Title. Date must be an ISO date ("2006-01-02") or RFC 3339
// timestamp, matching what the read path accepts.
type CreatePostRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug,omitempty"`
	Locale       string   `json:"locale"`
	Date         string   `json:"date"`
	Author       string   `json:"author,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
	Image        string   `json:"image,omitempty"`
	Published    *bool    `json:"published,omitempty"`
	SEOTitle     string   `json:"seoTitle,omitempty"`
	SEODesc      string   `json:"seoDescription,omitempty"`
	SEOKeywords  []string `json:"seoKeywords,omitempty"`
	RelatedPosts []string `json:"relatedPosts,omitempty"`
	Body         string   `json:"body"`
}

// Validate implements request-level validation; filesystem-dependent checks
// (locale membership, slug collisions) belong to the store.
func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Locale, validation.Required),
		validation.Field(&r.Date, validation.Required, validation.By(validatePostDate)),
	)
}

// UpdatePostRequest rewrites an existing post file. Zero-valued optional
// fields fall back to what the file currently holds; Body always replaces the
// stored body. Extra frontmatter keys the pipeline does not model are carried
// over untouched.
type UpdatePostRequest struct {
	Slug         string   `json:"slug"`
	Locale       string   `json:"locale"`
	Title        string   `json:"title,omitempty"`
	Date         string   `json:"date,omitempty"`
	Author       string   `json:"author,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
	Image        string   `json:"image,omitempty"`
	Published    *bool    `json:"published,omitempty"`
	SEOTitle     string   `json:"seoTitle,omitempty"`
	SEODesc      string   `json:"seoDescription,omitempty"`
	SEOKeywords  []string `json:"seoKeywords,omitempty"`
	RelatedPosts []string `json:"relatedPosts,omitempty"`
	Body         string   `json:"body"`
}

// Validate implements request-level validation for updates.
func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required),
		validation.Field(&r.Locale, validation.Required),
		validation.Field(&r.Date, validation.By(validatePostDate)),
	)
}

func validatePostDate(value any) error {
	raw, _ := value.(string)
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return nil
		}
	}
	return validation.NewError("blog.store.date", "must be an ISO date or RFC 3339 timestamp")
}
