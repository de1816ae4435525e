package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// LoaderConfig configures how post files are discovered. The expected layout
// is one directory per locale, each containing one "<slug>.md" file per post.
type LoaderConfig struct {
	// Locales enumerates the known locale directories (e.g. ["fr", "en"]).
	Locales []string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
}

// Loader turns locale directories into Markdown documents with metadata.
type Loader struct {
	fs      fs.FS
	locales []string
	pattern string
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:      filesystem,
		locales: append([]string(nil), cfg.Locales...),
		pattern: pattern,
	}
}

// Locales returns the locale directories the loader scans, in configured order.
func (l *Loader) Locales() []string {
	return append([]string(nil), l.locales...)
}

// LoadFile reads and parses the post file for the given locale and slug.
// A missing file surfaces as an error satisfying errors.Is(err, fs.ErrNotExist)
// so callers can translate it into a not-found outcome; any other failure is
// an environment fault and propagates as-is.
func (l *Loader) LoadFile(ctx context.Context, locale, slug string) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := path.Join(locale, slug+".md")

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", rel, err)
	}

	meta, body := ParseFrontMatter(data)

	return &interfaces.Document{
		FilePath:     rel,
		Locale:       locale,
		FrontMatter:  meta,
		Body:         body,
		LastModified: info.ModTime(),
	}, nil
}

// LoadLocale discovers every post file in the given locale directory and
// returns parsed documents sorted by file path. A locale directory that does
// not exist yields an empty slice; the locale simply has no posts yet.
func (l *Loader) LoadLocale(ctx context.Context, locale string) ([]*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fs, locale)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("markdown loader scan %s: %w", locale, err)
	}

	var docs []*interfaces.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if match, matchErr := path.Match(l.pattern, name); matchErr != nil || !match {
			continue
		}

		slug := strings.TrimSuffix(name, path.Ext(name))
		doc, err := l.LoadFile(ctx, locale, slug)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// File disappeared between the directory listing and the read;
				// the next enumeration reflects the new state.
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})

	return docs, nil
}

// LoadAll discovers post files across every configured locale directory.
func (l *Loader) LoadAll(ctx context.Context) ([]*interfaces.Document, error) {
	var docs []*interfaces.Document
	for _, locale := range l.locales {
		localeDocs, err := l.LoadLocale(ctx, locale)
		if err != nil {
			return nil, err
		}
		docs = append(docs, localeDocs...)
	}
	return docs, nil
}
