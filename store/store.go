// Package store is the authoring side of the content pipeline: it creates,
// rewrites, and deletes the Markdown files the posts repository reads. Both
// sides share one directory tree, so a write here is visible to the very next
// read with no cache to invalidate.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// Config locates the writable content root. The layout matches the read path:
// one directory per locale, one "<slug>.md" file per post.
type Config struct {
	BasePath string
	Locales  []string
	Logger   interfaces.Logger
}

// Store writes post files under a content root.
type Store struct {
	basePath string
	locales  []string
	logger   interfaces.Logger
}

// New constructs a store rooted at cfg.BasePath. The root must already exist;
// locale subdirectories are created on demand.
func New(cfg Config) (*Store, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("store: stat base path %s: %w", basePath, err)
	}

	locales := cfg.Locales
	if len(locales) == 0 {
		locales = []string{posts.LocaleFR, posts.LocaleEN}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Store{basePath: basePath, locales: locales, logger: logger}, nil
}

// Create writes a new post file and returns the materialized record. The slug
// defaults to a slugified Title; an existing file with the same locale/slug is
// never overwritten.
func (s *Store) Create(ctx context.Context, req CreatePostRequest) (*posts.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkLocale(req.Locale); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = posts.Slugify(req.Title)
	}
	if !posts.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	target := s.postPath(req.Locale, slug)
	if _, err := os.Stat(target); err == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrPostExists, req.Locale, slug)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("store: stat %s: %w", target, err)
	}

	meta := metaFromCreate(req)
	if err := s.writePost(target, meta, req.Body, nil); err != nil {
		return nil, err
	}

	s.logger.Info("store.post_created", "slug", slug, "locale", req.Locale)
	return posts.Build(slug, meta, []byte(req.Body)), nil
}

// Update rewrites an existing post file. Fields left zero in the request keep
// their stored values; frontmatter keys the pipeline does not model survive
// the rewrite verbatim.
func (s *Store) Update(ctx context.Context, req UpdatePostRequest) (*posts.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkLocale(req.Locale); err != nil {
		return nil, err
	}
	if !posts.IsValidSlug(req.Slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, req.Slug)
	}

	target := s.postPath(req.Locale, req.Slug)
	current, _, err := s.readPost(target)
	if err != nil {
		return nil, err
	}

	meta := mergeUpdate(current, req)
	if err := s.writePost(target, meta, req.Body, current.Custom); err != nil {
		return nil, err
	}

	s.logger.Info("store.post_updated", "slug", req.Slug, "locale", req.Locale)
	return posts.Build(req.Slug, meta, []byte(req.Body)), nil
}

// SetPublished flips only the published flag, leaving every other byte of
// metadata and the body as they were.
func (s *Store) SetPublished(ctx context.Context, locale, slug string, published bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkLocale(locale); err != nil {
		return err
	}
	if !posts.IsValidSlug(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	target := s.postPath(locale, slug)
	meta, body, err := s.readPost(target)
	if err != nil {
		return err
	}

	meta.Published = &published
	if err := s.writePost(target, meta, string(body), meta.Custom); err != nil {
		return err
	}

	s.logger.Info("store.post_published_set", "slug", slug, "locale", locale, "published", published)
	return nil
}

// Delete removes a post file. Deleting a post that does not exist is an error;
// callers that want idempotent deletes check ErrPostNotFound.
func (s *Store) Delete(ctx context.Context, locale, slug string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkLocale(locale); err != nil {
		return err
	}
	if !posts.IsValidSlug(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	target := s.postPath(locale, slug)
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s/%s", ErrPostNotFound, locale, slug)
		}
		return fmt.Errorf("store: remove %s: %w", target, err)
	}

	s.logger.Info("store.post_deleted", "slug", slug, "locale", locale)
	return nil
}

func (s *Store) postPath(locale, slug string) string {
	return filepath.Join(s.basePath, locale, slug+".md")
}

func (s *Store) checkLocale(locale string) error {
	for _, known := range s.locales {
		if known == locale {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

func (s *Store) readPost(target string) (interfaces.FrontMatter, []byte, error) {
	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return interfaces.FrontMatter{}, nil, fmt.Errorf("%w: %s", ErrPostNotFound, target)
		}
		return interfaces.FrontMatter{}, nil, fmt.Errorf("store: read %s: %w", target, err)
	}
	meta, body := markdown.ParseFrontMatter(data)
	return meta, body, nil
}

// writePost serializes frontmatter plus body and lands it atomically: the
// content goes to a temp file in the target directory first, then a rename
// swaps it in so the read path never observes a half-written file.
func (s *Store) writePost(target string, meta interfaces.FrontMatter, body string, custom map[string]any) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir %s: %w", dir, err)
	}

	content, err := renderPostFile(meta, body, custom)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".post-*.md")
	if err != nil {
		return fmt.Errorf("store: temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: rename %s: %w", target, err)
	}
	return nil
}

type frontMatterOut struct {
	Title        string         `yaml:"title"`
	Date         string         `yaml:"date"`
	Author       string         `yaml:"author,omitempty"`
	Category     string         `yaml:"category,omitempty"`
	Tags         []string       `yaml:"tags,omitempty"`
	Excerpt      string         `yaml:"excerpt,omitempty"`
	Image        string         `yaml:"image,omitempty"`
	Locale       string         `yaml:"locale"`
	Published    *bool          `yaml:"published,omitempty"`
	SEO          *seoOut        `yaml:"seo,omitempty"`
	RelatedPosts []string       `yaml:"relatedPosts,omitempty"`
	Custom       map[string]any `yaml:",inline"`
}

type seoOut struct {
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
}

func renderPostFile(meta interfaces.FrontMatter, body string, custom map[string]any) ([]byte, error) {
	out := frontMatterOut{
		Title:        meta.Title,
		Date:         meta.Date,
		Author:       meta.Author,
		Category:     meta.Category,
		Tags:         meta.Tags,
		Excerpt:      meta.Excerpt,
		Image:        meta.Image,
		Locale:       meta.Locale,
		Published:    meta.Published,
		RelatedPosts: meta.RelatedPosts,
		Custom:       custom,
	}
	if meta.SEO.Title != "" || meta.SEO.Description != "" || len(meta.SEO.Keywords) > 0 {
		out.SEO = &seoOut{
			Title:       meta.SEO.Title,
			Description: meta.SEO.Description,
			Keywords:    meta.SEO.Keywords,
		}
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("store: encode frontmatter: %w", err)
	}

	var buf strings.Builder
	buf.Grow(len(encoded) + len(body) + 16)
	buf.WriteString("---\n")
	buf.Write(encoded)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimLeft(body, "\n"))
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	return []byte(buf.String()), nil
}

func metaFromCreate(req CreatePostRequest) interfaces.FrontMatter {
	return interfaces.FrontMatter{
		Title:     strings.TrimSpace(req.Title),
		Date:      strings.TrimSpace(req.Date),
		Author:    strings.TrimSpace(req.Author),
		Category:  strings.TrimSpace(req.Category),
		Tags:      req.Tags,
		Excerpt:   req.Excerpt,
		Image:     req.Image,
		Locale:    req.Locale,
		Published: req.Published,
		SEO: interfaces.SEOMeta{
			Title:       req.SEOTitle,
			Description: req.SEODesc,
			Keywords:    req.SEOKeywords,
		},
		RelatedPosts: req.RelatedPosts,
	}
}

func mergeUpdate(current interfaces.FrontMatter, req UpdatePostRequest) interfaces.FrontMatter {
	merged := current
	merged.Locale = req.Locale

	if v := strings.TrimSpace(req.Title); v != "" {
		merged.Title = v
	}
	if v := strings.TrimSpace(req.Date); v != "" {
		merged.Date = v
	}
	if v := strings.TrimSpace(req.Author); v != "" {
		merged.Author = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		merged.Category = v
	}
	if req.Tags != nil {
		merged.Tags = req.Tags
	}
	if req.Excerpt != "" {
		merged.Excerpt = req.Excerpt
	}
	if req.Image != "" {
		merged.Image = req.Image
	}
	if req.Published != nil {
		merged.Published = req.Published
	}
	if req.SEOTitle != "" {
		merged.SEO.Title = req.SEOTitle
	}
	if req.SEODesc != "" {
		merged.SEO.Description = req.SEODesc
	}
	if req.SEOKeywords != nil {
		merged.SEO.Keywords = req.SEOKeywords
	}
	if req.RelatedPosts != nil {
		merged.RelatedPosts = req.RelatedPosts
	}
	return merged
}
