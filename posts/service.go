package posts

import (
	"context"
	"html"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ServiceConfig wires the read API together. Repository is required; the
// recommender and parser are constructed with defaults when absent. A zero
// ParseOpts selects the engine defaults (GFM, hard line breaks) rather than a
// fully disabled renderer. RelatedLimit caps recommendations when callers pass
// limit<=0; zero falls through to DefaultRelatedLimit.
type ServiceConfig struct {
	Repository   *Repository
	Recommender  *Recommender
	Parser       interfaces.MarkdownParser
	ParseOpts    interfaces.ParseOptions
	RelatedLimit int
	Logger       interfaces.Logger
}

// Service is the public read API over the post pipeline: listing, slug
// lookup, related-post recommendations, and on-demand body rendering.
type Service struct {
	repo         *Repository
	recommender  *Recommender
	parser       interfaces.MarkdownParser
	parseOpts    interfaces.ParseOptions
	relatedLimit int
	logger       interfaces.Logger
}

// NewService constructs the post service from the supplied configuration.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Repository == nil {
		return nil, ErrRepositoryRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	recommender := cfg.Recommender
	if recommender == nil {
		var err error
		recommender, err = NewRecommender(cfg.Repository, logger)
		if err != nil {
			return nil, err
		}
	}

	parser := cfg.Parser
	parseOpts := cfg.ParseOpts
	if parser == nil {
		if parseOpts.IsZero() {
			parseOpts = markdown.DefaultParseOptions()
		}
		parser = markdown.NewGoldmarkParser(parseOpts)
	}

	return &Service{
		repo:         cfg.Repository,
		recommender:  recommender,
		parser:       parser,
		parseOpts:    parseOpts,
		relatedLimit: cfg.RelatedLimit,
		logger:       logger,
	}, nil
}

// ListPosts returns posts matching the filter, sorted by date descending.
func (s *Service) ListPosts(ctx context.Context, filter Filter) ([]*Post, error) {
	return s.repo.List(ctx, filter)
}

// GetPost looks up a published post by slug. When locale is empty the
// configured locales are tried in order. Returns (nil, nil) when no valid
// published post exists.
func (s *Service) GetPost(ctx context.Context, slug, locale string) (*Post, error) {
	return s.repo.GetBySlug(ctx, slug, locale)
}

// GetRelated resolves the post for slug/locale and returns up to limit
// related posts. A limit<=0 falls back to the configured RelatedLimit, then
// to the recommender's built-in default. An unknown slug yields an empty
// result, mirroring the repository's not-found behaviour.
func (s *Service) GetRelated(ctx context.Context, slug, locale string, limit int) ([]*Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug, locale)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = s.relatedLimit
	}
	return s.recommender.Related(ctx, post, limit)
}

// RenderBody converts a Markdown body to HTML. Rendering never fails a
// request over malformed input: if the engine rejects the body, the escaped
// source is returned inside a paragraph so the caller still has displayable
// content. Only context cancellation surfaces as an error.
func (s *Service) RenderBody(ctx context.Context, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rendered, err := s.parser.ParseWithOptions([]byte(body), s.parseOpts)
	if err != nil {
		s.logger.Warn("posts.render.fallback", "error", err)
		return "<p>" + html.EscapeString(body) + "</p>", nil
	}
	return string(rendered), nil
}

// RenderPost renders the post's body. The HTML is derived on demand and not
// stored on the Post record.
func (s *Service) RenderPost(ctx context.Context, post *Post) (string, error) {
	if post == nil {
		return "", ErrPostRequired
	}
	return s.RenderBody(ctx, post.Content)
}
