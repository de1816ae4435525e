package posts

import (
	"context"
	"sort"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// DefaultRelatedLimit is the number of recommendations returned when the
// caller does not ask for a specific count.
const DefaultRelatedLimit = 3

// Similarity weights: sharing the post's category outranks any realistic
// number of shared tags on typical tag-set sizes.
const (
	categoryMatchScore = 3
	tagMatchScore      = 1
)

// Recommender produces related-post suggestions for a given post, either from
// the post's curated relatedPosts list or by category/tag similarity.
type Recommender struct {
	repo   *Repository
	logger interfaces.Logger
}

// NewRecommender constructs a recommender over the given repository.
func NewRecommender(repo *Repository, logger interfaces.Logger) (*Recommender, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Recommender{repo: repo, logger: logger}, nil
}

// Related returns up to limit posts related to the given post, all from the
// post's own locale. A curated relatedPosts list takes precedence: entries
// are resolved in authored order, unresolvable or unpublished ones dropped,
// and the result is used as-is when at least one entry survives. Only when
// curation yields nothing does similarity scoring run.
func (r *Recommender) Related(ctx context.Context, post *Post, limit int) ([]*Post, error) {
	if post == nil {
		return nil, ErrPostRequired
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	curated, err := r.curated(ctx, post, limit)
	if err != nil {
		return nil, err
	}
	if len(curated) > 0 {
		return curated, nil
	}

	return r.scored(ctx, post, limit)
}

func (r *Recommender) curated(ctx context.Context, post *Post, limit int) ([]*Post, error) {
	if len(post.RelatedSlugs) == 0 {
		return nil, nil
	}

	picks := make([]*Post, 0, limit)
	for _, slug := range post.RelatedSlugs {
		if len(picks) == limit {
			break
		}
		if slug == post.Slug {
			continue
		}
		candidate, err := r.repo.GetBySlug(ctx, slug, post.Locale)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			r.logger.Debug("posts.related.curated_unresolved", "slug", slug, "locale", post.Locale)
			continue
		}
		picks = append(picks, candidate)
	}
	return picks, nil
}

func (r *Recommender) scored(ctx context.Context, post *Post, limit int) ([]*Post, error) {
	candidates, err := r.repo.List(ctx, Filter{Locale: post.Locale})
	if err != nil {
		return nil, err
	}

	tags := make(map[string]struct{}, len(post.Tags))
	for _, tag := range post.Tags {
		tags[tag] = struct{}{}
	}

	type scoredPost struct {
		post  *Post
		score int
	}

	scored := make([]scoredPost, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Slug == post.Slug {
			continue
		}
		score := 0
		if candidate.Category == post.Category {
			score += categoryMatchScore
		}
		for _, tag := range candidate.Tags {
			if _, ok := tags[tag]; ok {
				score += tagMatchScore
			}
		}
		scored = append(scored, scoredPost{post: candidate, score: score})
	}

	// Stable sort keeps the repository's date-descending order for ties.
	// Zero-score candidates stay eligible; there is no minimum cutoff.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}

	picks := make([]*Post, 0, len(scored))
	for _, entry := range scored {
		picks = append(picks, entry.post)
	}
	return picks, nil
}
