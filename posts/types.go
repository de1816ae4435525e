package posts

import (
	"time"

	"github.com/google/uuid"
)

// Supported locale codes. Each locale's posts are independent entities: the
// same logical article published in both languages is two Post records.
const (
	LocaleFR = "fr"
	LocaleEN = "en"
)

// Fallback identifiers applied when frontmatter omits the field. Author and
// category reference the external directories by slug.
const (
	DefaultAuthor   = "equipe-octogone"
	DefaultCategory = "conseils"
	DefaultImage    = "/images/blog/default.jpg"
)

// Post is a single content article materialized from a Markdown file.
// WordCount and ReadingTime are always recomputed from Content during
// building; they are never authored and cannot drift from the body.
type Post struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Author       string    `json:"author"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Excerpt      string    `json:"excerpt"`
	Image        string    `json:"image"`
	Locale       string    `json:"locale"`
	Published    bool      `json:"published"`
	Content      string    `json:"content"`
	WordCount    int       `json:"word_count"`
	ReadingTime  int       `json:"reading_time"`
	SEO          SEO       `json:"seo"`
	RelatedSlugs []string  `json:"related_slugs,omitempty"`
	SourcePath   string    `json:"source_path,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
}

// SEO holds the display metadata resolved during building: explicit
// frontmatter overrides first, then title/excerpt/tags fallbacks.
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Filter narrows repository listings. The zero value lists every published
// post across all configured locales.
type Filter struct {
	// Locale restricts results to a single locale when set.
	Locale string
	// Category matches posts whose category equals the given slug.
	Category string
	// Tag matches posts whose tag set contains the given tag.
	Tag string
	// PublishedOnly excludes unpublished posts when nil or true. Admin
	// listings pass an explicit false to include drafts.
	PublishedOnly *bool
	// Limit caps the number of returned posts when positive.
	Limit int
	// Offset skips that many posts after sorting and filtering. An offset
	// beyond the collection yields an empty result, not an error.
	Offset int
}

func (f Filter) publishedOnly() bool {
	return f.PublishedOnly == nil || *f.PublishedOnly
}

func (f Filter) matches(p *Post) bool {
	if f.publishedOnly() && !p.Published {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Tag != "" && !p.HasTag(f.Tag) {
		return false
	}
	return true
}
