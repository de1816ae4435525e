// Package blog assembles a bilingual, file-backed blog engine: Markdown files
// with YAML frontmatter in, typed post records, rendered HTML, and related
// content recommendations out. The facade wires the read pipeline, the author
// and category directories, and the authoring store from one configuration.
package blog

import (
	"os"
	"path/filepath"

	"github.com/goliatone/go-blog/directory"
	"github.com/goliatone/go-blog/internal/commands"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
	"github.com/goliatone/go-blog/store"
)

// Post exports the post record for consumers of the blog package.
type Post = posts.Post

// Filter exports the post listing filter.
type Filter = posts.Filter

// SEO exports the per-post SEO metadata block.
type SEO = posts.SEO

// Author exports the author directory record.
type Author = directory.Author

// Category exports the category directory record.
type Category = directory.Category

// CreatePostRequest exports the store's create request.
type CreatePostRequest = store.CreatePostRequest

// UpdatePostRequest exports the store's update request.
type UpdatePostRequest = store.UpdatePostRequest

// PostService exports the read API contract.
type PostService = *posts.Service

// Slugify derives a canonical URL slug from free-form text.
func Slugify(input string) string { return posts.Slugify(input) }

// IsValidSlug reports whether a slug is already in canonical form.
func IsValidSlug(slug string) bool { return posts.IsValidSlug(slug) }

// Handlers bundles the command handlers for post authoring operations.
type Handlers struct {
	CreatePost   *postscmd.CreatePostHandler
	UpdatePost   *postscmd.UpdatePostHandler
	SetPublished *postscmd.SetPublishedHandler
	DeletePost   *postscmd.DeletePostHandler
}

// Module represents the top level blog runtime facade.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	posts     *posts.Service
	directory *directory.Service
	store     *store.Store
	handlers  Handlers
}

// Option overrides pieces of the module wiring.
type Option func(*moduleDeps)

type moduleDeps struct {
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
}

// WithLoggerProvider supplies an external logger provider instead of the
// config-driven go-logger one.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.provider = provider
	}
}

// WithParser overrides the Markdown engine used for rendering.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(d *moduleDeps) {
		d.parser = parser
	}
}

// New constructs a blog module using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := moduleDeps{}
	for _, opt := range opts {
		opt(&deps)
	}

	provider := deps.provider
	if provider == nil {
		loggingCfg := gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		}
		if cfg.Logging.Provider == "console" && loggingCfg.Format == "" {
			loggingCfg.Format = "console"
		}
		built, err := gologger.NewProvider(loggingCfg)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	parseOpts := interfaces.ParseOptions{
		Extensions: cfg.Markdown.Extensions,
		Sanitize:   cfg.Markdown.Sanitize,
		HardWraps:  cfg.Markdown.HardWraps,
		SafeMode:   cfg.Markdown.SafeMode,
	}

	repo, err := posts.NewRepository(posts.RepositoryConfig{
		BasePath: cfg.Content.BasePath,
		Locales:  cfg.Content.Locales,
		Pattern:  cfg.Content.Pattern,
		Logger:   logging.PostsLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	service, err := posts.NewService(posts.ServiceConfig{
		Repository:   repo,
		Parser:       deps.parser,
		ParseOpts:    parseOpts,
		RelatedLimit: cfg.Related.Limit,
		Logger:       logging.MarkdownLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	dir, err := directory.New(directory.Config{
		FS:             os.DirFS(filepath.Clean(cfg.Content.BasePath)),
		AuthorsPath:    cfg.Directory.AuthorsPath,
		CategoriesPath: cfg.Directory.CategoriesPath,
		Locales:        cfg.Content.Locales,
		Logger:         logging.DirectoryLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	st, err := store.New(store.Config{
		BasePath: cfg.Content.BasePath,
		Locales:  cfg.Content.Locales,
		Logger:   logging.StoreLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	cmdLogger := commands.CommandLogger(provider, "posts")
	handlers := Handlers{
		CreatePost:   postscmd.NewCreatePostHandler(st, cmdLogger),
		UpdatePost:   postscmd.NewUpdatePostHandler(st, cmdLogger),
		SetPublished: postscmd.NewSetPublishedHandler(st, cmdLogger),
		DeletePost:   postscmd.NewDeletePostHandler(st, cmdLogger),
	}

	return &Module{
		cfg:       cfg,
		provider:  provider,
		posts:     service,
		directory: dir,
		store:     st,
		handlers:  handlers,
	}, nil
}

// Posts returns the configured post read service.
func (m *Module) Posts() PostService {
	return m.posts
}

// Directory returns the author and category lookup service.
func (m *Module) Directory() *directory.Service {
	if m == nil {
		return nil
	}
	return m.directory
}

// Store returns the authoring store.
func (m *Module) Store() *store.Store {
	if m == nil {
		return nil
	}
	return m.store
}

// Commands returns the post authoring command handlers.
func (m *Module) Commands() Handlers {
	return m.handlers
}

// DefaultLocale reports the locale used when lookups do not specify one.
func (m *Module) DefaultLocale() string {
	return m.cfg.DefaultLocale
}

// Logger exposes the module's logger provider for host integrations.
func (m *Module) Logger() interfaces.LoggerProvider {
	return m.provider
}
