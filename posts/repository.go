package posts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// RepositoryConfig controls how the repository locates post files. The
// expected layout under the base path is one directory per locale, each
// holding one "<slug>.md" file per post.
type RepositoryConfig struct {
	// BasePath is the content root on disk (e.g. "content/blog").
	BasePath string
	// FS overrides BasePath with an explicit filesystem when set.
	FS fs.FS
	// Locales lists the locale directories in lookup-fallback order.
	// Defaults to ["fr", "en"].
	Locales []string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	Logger  interfaces.Logger
}

// Repository enumerates posts from the filesystem. Every call re-reads the
// backing files, so the directory tree is the single source of truth and
// external rewrites are picked up on the next read with no staleness window.
type Repository struct {
	loader  *markdown.Loader
	locales []string
	logger  interfaces.Logger
}

// NewRepository constructs a filesystem-backed repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	filesystem := cfg.FS
	if filesystem == nil {
		basePath := strings.TrimSpace(cfg.BasePath)
		if basePath == "" {
			basePath = "."
		}
		if _, err := os.Stat(basePath); err != nil {
			return nil, fmt.Errorf("posts repository: stat base path %s: %w", basePath, err)
		}
		filesystem = os.DirFS(basePath)
	}

	locales := normalizeLocales(cfg.Locales)

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Repository{
		loader: markdown.NewLoader(filesystem, markdown.LoaderConfig{
			Locales: locales,
			Pattern: cfg.Pattern,
		}),
		locales: locales,
		logger:  logger,
	}, nil
}

// Locales returns the configured locales in lookup-fallback order.
func (r *Repository) Locales() []string {
	return append([]string(nil), r.locales...)
}

// List scans the backing files, applies the filter, sorts by date descending
// (ties order by slug ascending for determinism), then applies offset and
// limit. Files with missing required metadata are silently skipped: that is a
// filtering outcome, not a fault. Filesystem failures propagate as errors.
func (r *Repository) List(ctx context.Context, filter Filter) ([]*Post, error) {
	locales := r.locales
	if filter.Locale != "" {
		if !r.knownLocale(filter.Locale) {
			return nil, nil
		}
		locales = []string{filter.Locale}
	}

	var collected []*Post
	for _, locale := range locales {
		docs, err := r.loader.LoadLocale(ctx, locale)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			post := FromDocument(doc)
			if post == nil {
				r.logger.Debug("posts.list.skip_invalid", "path", doc.FilePath)
				continue
			}
			if post.Locale != locale {
				// Frontmatter contradicts the directory it lives in; treat as
				// invalid rather than guessing which locale wins.
				r.logger.Warn("posts.list.locale_mismatch", "path", doc.FilePath, "frontmatter_locale", post.Locale)
				continue
			}
			if !filter.matches(post) {
				continue
			}
			collected = append(collected, post)
		}
	}

	sortPosts(collected)
	return paginate(collected, filter.Offset, filter.Limit), nil
}

// GetBySlug reads the post file for the given slug. When locale is empty the
// configured locales are tried in order and the first valid published post
// wins. Missing files, invalid metadata, and unpublished posts all yield
// (nil, nil) so callers render the same not-found state regardless of cause.
func (r *Repository) GetBySlug(ctx context.Context, slug, locale string) (*Post, error) {
	if !IsValidSlug(slug) {
		return nil, nil
	}

	locales := r.locales
	if locale != "" {
		if !r.knownLocale(locale) {
			return nil, nil
		}
		locales = []string{locale}
	}

	for _, loc := range locales {
		doc, err := r.loader.LoadFile(ctx, loc, slug)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		post := FromDocument(doc)
		if post == nil || !post.Published || post.Locale != loc {
			continue
		}
		return post, nil
	}

	return nil, nil
}

func (r *Repository) knownLocale(locale string) bool {
	for _, known := range r.locales {
		if known == locale {
			return true
		}
	}
	return false
}

func normalizeLocales(locales []string) []string {
	out := make([]string, 0, len(locales))
	for _, locale := range locales {
		if trimmed := strings.ToLower(strings.TrimSpace(locale)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{LocaleFR, LocaleEN}
	}
	return out
}

func sortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func paginate(posts []*Post, offset, limit int) []*Post {
	if offset > 0 {
		if offset >= len(posts) {
			return nil
		}
		posts = posts[offset:]
	}
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return posts
}
