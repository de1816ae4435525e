package interfaces

import "time"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations must be safe for reuse across calls; the parser carries no
// per-document state.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags. The zero value
// selects the engine defaults (GFM extensions with hard line breaks), not a
// fully disabled renderer; set any field to take over the configuration.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// IsZero reports whether no parse option was set.
func (o ParseOptions) IsZero() bool {
	return len(o.Extensions) == 0 && !o.Sanitize && !o.HardWraps && !o.SafeMode
}

// Document represents a Markdown post file with parsed metadata and content.
// The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Locale       string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
}

// FrontMatter models the metadata block extracted from post files. The typed
// fields cover the authoring schema; Custom keeps unknown keys so write
// workflows can round-trip them, and Raw exposes the merged view.
type FrontMatter struct {
	Title        string         `yaml:"title" json:"title"`
	Date         string         `yaml:"date" json:"date"`
	Author       string         `yaml:"author" json:"author"`
	Category     string         `yaml:"category" json:"category"`
	Tags         []string       `yaml:"tags" json:"tags"`
	Excerpt      string         `yaml:"excerpt" json:"excerpt"`
	Image        string         `yaml:"image" json:"image"`
	Locale       string         `yaml:"locale" json:"locale"`
	Published    *bool          `yaml:"published" json:"published"`
	SEO          SEOMeta        `yaml:"seo" json:"seo"`
	RelatedPosts []string       `yaml:"relatedPosts" json:"related_posts"`
	Custom       map[string]any `yaml:",inline" json:"custom"`
	Raw          map[string]any `yaml:"-" json:"raw"`
}

// SEOMeta carries the optional SEO override block from frontmatter. Empty
// fields fall back to the post title, excerpt, and tags during record building.
type SEOMeta struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
}
