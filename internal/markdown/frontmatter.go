package markdown

import (
	"bytes"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. Parsing is deliberately lenient: a file without a
// metadata block, or with one that cannot be decoded, yields empty metadata
// and the full source as body. Downstream required-field checks turn that
// into a "post does not exist" outcome rather than a fault.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return envelopeToFrontMatter(frontMatterEnvelope{}), source
	}

	return envelopeToFrontMatter(meta), body
}

type frontMatterEnvelope struct {
	Title        string         `yaml:"title"`
	Date         string         `yaml:"date"`
	Author       string         `yaml:"author"`
	Category     string         `yaml:"category"`
	Tags         []string       `yaml:"tags"`
	Excerpt      string         `yaml:"excerpt"`
	Image        string         `yaml:"image"`
	Locale       string         `yaml:"locale"`
	Published    *bool          `yaml:"published"`
	SEO          seoEnvelope    `yaml:"seo"`
	RelatedPosts []string       `yaml:"relatedPosts"`
	Custom       map[string]any `yaml:",inline"`
}

type seoEnvelope struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+10)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Date != "" {
		raw["date"] = env.Date
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if env.Category != "" {
		raw["category"] = env.Category
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Excerpt != "" {
		raw["excerpt"] = env.Excerpt
	}
	if env.Image != "" {
		raw["image"] = env.Image
	}
	if env.Locale != "" {
		raw["locale"] = env.Locale
	}
	if env.Published != nil {
		raw["published"] = *env.Published
	}
	if len(env.RelatedPosts) > 0 {
		raw["relatedPosts"] = append([]string(nil), env.RelatedPosts...)
	}

	return interfaces.FrontMatter{
		Title:        env.Title,
		Date:         env.Date,
		Author:       env.Author,
		Category:     env.Category,
		Tags:         append([]string(nil), env.Tags...),
		Excerpt:      env.Excerpt,
		Image:        env.Image,
		Locale:       env.Locale,
		Published:    env.Published,
		SEO: interfaces.SEOMeta{
			Title:       env.SEO.Title,
			Description: env.SEO.Description,
			Keywords:    append([]string(nil), env.SEO.Keywords...),
		},
		RelatedPosts: append([]string(nil), env.RelatedPosts...),
		Custom:       cloneMap(env.Custom),
		Raw:          raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
