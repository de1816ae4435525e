// Package directory loads the author and category lookup tables that posts
// reference by slug. The tables live as one JSON file per locale and are
// read-only collaborators injected alongside the post pipeline, never global
// state.
package directory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrFilesystemRequired is returned when no source filesystem is configured.
var ErrFilesystemRequired = errors.New("directory: filesystem is required")

// Config locates the directory files. Files are expected at
// "<AuthorsPath>/<locale>.json" and "<CategoriesPath>/<locale>.json"; a
// missing file means that locale has no entries, which is not a fault.
type Config struct {
	FS             fs.FS
	AuthorsPath    string
	CategoriesPath string
	Locales        []string
	Logger         interfaces.Logger
}

// Service resolves author and category slugs to display records per locale.
// All data is loaded and schema-validated at construction; lookups afterwards
// are pure map reads and safe for concurrent use.
type Service struct {
	authors    map[string]map[string]Author
	categories map[string]map[string]Category
	logger     interfaces.Logger
}

// New loads every configured locale's directory files. A file that exists but
// fails schema validation is an environment fault and aborts construction.
func New(cfg Config) (*Service, error) {
	if cfg.FS == nil {
		return nil, ErrFilesystemRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	authorsPath := cfg.AuthorsPath
	if strings.TrimSpace(authorsPath) == "" {
		authorsPath = "authors"
	}
	categoriesPath := cfg.CategoriesPath
	if strings.TrimSpace(categoriesPath) == "" {
		categoriesPath = "categories"
	}

	svc := &Service{
		authors:    map[string]map[string]Author{},
		categories: map[string]map[string]Category{},
		logger:     logger,
	}

	for _, locale := range cfg.Locales {
		authors, err := loadEntries[authorEntry](cfg.FS, path.Join(authorsPath, locale+".json"), authorSchema)
		if err != nil {
			return nil, err
		}
		svc.authors[locale] = make(map[string]Author, len(authors))
		for slug, entry := range authors {
			svc.authors[locale][slug] = Author{
				ID:     identity.AuthorUUID(locale, slug),
				Slug:   slug,
				Name:   entry.Name,
				Bio:    entry.Bio,
				Avatar: entry.Avatar,
				Role:   entry.Role,
			}
		}

		categories, err := loadEntries[categoryEntry](cfg.FS, path.Join(categoriesPath, locale+".json"), categorySchema)
		if err != nil {
			return nil, err
		}
		svc.categories[locale] = make(map[string]Category, len(categories))
		for slug, entry := range categories {
			svc.categories[locale][slug] = Category{
				ID:          identity.CategoryUUID(locale, slug),
				Slug:        slug,
				Name:        entry.Name,
				Description: entry.Description,
				Color:       entry.Color,
			}
		}

		logger.Debug("directory.locale_loaded", "locale", locale,
			"authors", len(svc.authors[locale]), "categories", len(svc.categories[locale]))
	}

	return svc, nil
}

// Author resolves an author slug for the given locale.
func (s *Service) Author(locale, slug string) (Author, bool) {
	author, ok := s.authors[locale][slug]
	return author, ok
}

// Category resolves a category slug for the given locale.
func (s *Service) Category(locale, slug string) (Category, bool) {
	category, ok := s.categories[locale][slug]
	return category, ok
}

// Authors returns every author registered for the locale.
func (s *Service) Authors(locale string) []Author {
	out := make([]Author, 0, len(s.authors[locale]))
	for _, author := range s.authors[locale] {
		out = append(out, author)
	}
	return out
}

// Categories returns every category registered for the locale.
func (s *Service) Categories(locale string) []Category {
	out := make([]Category, 0, len(s.categories[locale]))
	for _, category := range s.categories[locale] {
		out = append(out, category)
	}
	return out
}

func loadEntries[T any](filesystem fs.FS, file string, schema map[string]any) (map[string]T, error) {
	data, err := fs.ReadFile(filesystem, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]T{}, nil
		}
		return nil, fmt.Errorf("directory: read %s: %w", file, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("directory: decode %s: %w", file, err)
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("directory: compile schema for %s: %w", file, err)
	}
	if err := compiled.Validate(raw); err != nil {
		return nil, fmt.Errorf("directory: validate %s: %w", file, err)
	}

	entries := map[string]T{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("directory: decode %s: %w", file, err)
	}
	return entries, nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

var authorSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]any{
			"name":   map[string]any{"type": "string"},
			"bio":    map[string]any{"type": "string"},
			"avatar": map[string]any{"type": "string"},
			"role":   map[string]any{"type": "string"},
		},
	},
}

var categorySchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"color":       map[string]any{"type": "string"},
		},
	},
}
