package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContentDirRequired indicates no content root was configured.
var ErrContentDirRequired = errors.New("blog config: content base path is required")

// ErrDefaultLocaleRequired indicates the default locale is empty.
var ErrDefaultLocaleRequired = errors.New("blog config: default locale is required")

// ErrDefaultLocaleUnknown indicates the default locale is not in the locale list.
var ErrDefaultLocaleUnknown = errors.New("blog config: default locale must appear in the locale list")

var ErrLocalesRequired = errors.New("blog config: at least one locale is required")
var ErrRelatedLimitInvalid = errors.New("blog config: related post limit must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates the runtime settings for the blog module. Fields use
// simple types so host applications can bind them from their own config
// loaders.
type Config struct {
	DefaultLocale string
	Content       ContentConfig
	Directory     DirectoryConfig
	Markdown      MarkdownConfig
	Related       RelatedConfig
	Logging       LoggingConfig
}

// ContentConfig locates the Markdown content tree.
type ContentConfig struct {
	// BasePath is the content root holding one directory per locale.
	BasePath string
	// Locales lists locale directories in lookup-fallback order.
	Locales []string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
}

// DirectoryConfig locates the author and category lookup files, relative to
// the content base path.
type DirectoryConfig struct {
	AuthorsPath    string
	CategoriesPath string
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// RelatedConfig tunes the related-post recommender.
type RelatedConfig struct {
	// Limit is the default number of recommendations (0 means the built-in default).
	Limit int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a bilingual content tree.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "fr",
		Content: ContentConfig{
			BasePath: "content/blog",
			Locales:  []string{"fr", "en"},
			Pattern:  "*.md",
		},
		Directory: DirectoryConfig{
			AuthorsPath:    "authors",
			CategoriesPath: "categories",
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm"},
			HardWraps:  true,
		},
		Related: RelatedConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.BasePath) == "" {
		return ErrContentDirRequired
	}
	if len(cfg.Content.Locales) == 0 {
		return ErrLocalesRequired
	}
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if !containsLocale(cfg.Content.Locales, cfg.DefaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnknown, cfg.DefaultLocale)
	}
	if cfg.Related.Limit < 0 {
		return ErrRelatedLimitInvalid
	}
	if provider := normalizeProvider(cfg.Logging.Provider); provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func containsLocale(locales []string, locale string) bool {
	needle := strings.ToLower(strings.TrimSpace(locale))
	for _, candidate := range locales {
		if strings.ToLower(strings.TrimSpace(candidate)) == needle {
			return true
		}
	}
	return false
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
