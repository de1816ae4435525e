package posts

import (
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// wordsPerMinute is the reading speed assumed when deriving ReadingTime.
const wordsPerMinute = 200

// Accepted layouts for the frontmatter date field. Authors write plain ISO
// dates; full timestamps are tolerated.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Build assembles a Post from parsed frontmatter and the raw Markdown body.
// It returns nil when required metadata (title, date, locale) is missing or
// unusable; callers treat nil as "post does not exist". Unpublished posts are
// materialized with Published set to false so admin reads can still see
// drafts; public paths filter them out (see BuildPublished).
//
// Build is a pure function of its inputs: no I/O, no shared state.
func Build(slug string, meta interfaces.FrontMatter, body []byte) *Post {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return nil
	}

	date, ok := parseDate(meta.Date)
	if !ok {
		return nil
	}

	locale := strings.ToLower(strings.TrimSpace(meta.Locale))
	if locale == "" {
		return nil
	}

	published := true
	if meta.Published != nil {
		published = *meta.Published
	}

	author := strings.TrimSpace(meta.Author)
	if author == "" {
		author = DefaultAuthor
	}

	category := strings.TrimSpace(meta.Category)
	if category == "" {
		category = DefaultCategory
	}

	image := strings.TrimSpace(meta.Image)
	if image == "" {
		image = DefaultImage
	}

	content := string(body)
	wordCount := len(strings.Fields(content))
	readingTime := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if readingTime < 1 {
		readingTime = 1
	}

	tags := append([]string(nil), meta.Tags...)

	return &Post{
		ID:           identity.PostUUID(locale, slug),
		Slug:         slug,
		Title:        title,
		Date:         date,
		Author:       author,
		Category:     category,
		Tags:         tags,
		Excerpt:      meta.Excerpt,
		Image:        image,
		Locale:       locale,
		Published:    published,
		Content:      content,
		WordCount:    wordCount,
		ReadingTime:  readingTime,
		SEO:          buildSEO(meta, title, tags),
		RelatedSlugs: append([]string(nil), meta.RelatedPosts...),
	}
}

// BuildPublished is the public-read variant of Build: posts that are missing
// required metadata or explicitly unpublished both come back nil, so every
// not-found cause collapses into the same caller-visible outcome.
func BuildPublished(slug string, meta interfaces.FrontMatter, body []byte) *Post {
	post := Build(slug, meta, body)
	if post == nil || !post.Published {
		return nil
	}
	return post
}

// FromDocument builds a Post from a loaded document, deriving the slug from
// the file name and carrying over source bookkeeping.
func FromDocument(doc *interfaces.Document) *Post {
	if doc == nil {
		return nil
	}

	name := path.Base(doc.FilePath)
	slug := strings.TrimSuffix(name, path.Ext(name))

	post := Build(slug, doc.FrontMatter, doc.Body)
	if post == nil {
		return nil
	}

	post.SourcePath = doc.FilePath
	post.LastModified = doc.LastModified
	return post
}

func buildSEO(meta interfaces.FrontMatter, title string, tags []string) SEO {
	seo := SEO{
		Title:       strings.TrimSpace(meta.SEO.Title),
		Description: strings.TrimSpace(meta.SEO.Description),
		Keywords:    append([]string(nil), meta.SEO.Keywords...),
	}
	if seo.Title == "" {
		seo.Title = title
	}
	if seo.Description == "" {
		seo.Description = meta.Excerpt
	}
	if len(seo.Keywords) == 0 {
		seo.Keywords = append([]string(nil), tags...)
	}
	return seo
}

func parseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}
