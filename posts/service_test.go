package posts

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(ServiceConfig{
		Repository: newTestRepository(t),
		ParseOpts:  interfaces.ParseOptions{Extensions: []string{"gfm"}, HardWraps: true},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := NewService(ServiceConfig{}); err != ErrRepositoryRequired {
		t.Fatalf("expected ErrRepositoryRequired, got %v", err)
	}
}

func TestServiceListAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	listed, err := svc.ListPosts(ctx, Filter{Locale: "fr"})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(listed))
	}

	post, err := svc.GetPost(ctx, "audit-fiscal", "fr")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post == nil {
		t.Fatal("expected audit-fiscal")
	}
	if post.WordCount == 0 || post.ReadingTime < 1 {
		t.Fatalf("expected derived metrics, got wc=%d rt=%d", post.WordCount, post.ReadingTime)
	}
}

func TestServiceRenderPost(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	post, err := svc.GetPost(ctx, "audit-fiscal", "fr")
	if err != nil || post == nil {
		t.Fatalf("GetPost: %v, %v", post, err)
	}

	html, err := svc.RenderPost(ctx, post)
	if err != nil {
		t.Fatalf("RenderPost: %v", err)
	}
	if !strings.Contains(html, "<p>") {
		t.Fatalf("expected paragraph markup, got %q", html)
	}
	if strings.Contains(html, "---") {
		t.Fatalf("metadata leaked into rendered output: %q", html)
	}

	if _, err := svc.RenderPost(ctx, nil); err != ErrPostRequired {
		t.Fatalf("expected ErrPostRequired, got %v", err)
	}
}

func TestServiceRenderBodyCancelledContext(t *testing.T) {
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.RenderBody(ctx, "body"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestServiceGetRelated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	related, err := svc.GetRelated(ctx, "gestion-stocks", "fr", 3)
	if err != nil {
		t.Fatalf("GetRelated: %v", err)
	}
	if len(related) == 0 {
		t.Fatal("expected recommendations")
	}

	none, err := svc.GetRelated(ctx, "absent", "fr", 3)
	if err != nil {
		t.Fatalf("GetRelated: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil for unknown slug, got %v", slugs(none))
	}
}

func TestServiceConfiguredRelatedLimit(t *testing.T) {
	svc, err := NewService(ServiceConfig{
		Repository:   newTestRepository(t),
		RelatedLimit: 1,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	related, err := svc.GetRelated(context.Background(), "gestion-stocks", "fr", 0)
	if err != nil {
		t.Fatalf("GetRelated: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("expected the configured limit of 1, got %v", slugs(related))
	}

	// An explicit limit still wins over the configured default.
	related, err = svc.GetRelated(context.Background(), "gestion-stocks", "fr", 2)
	if err != nil {
		t.Fatalf("GetRelated: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", slugs(related))
	}
}

func TestServiceRenderBodyDefaultsToHardWraps(t *testing.T) {
	svc, err := NewService(ServiceConfig{Repository: newTestRepository(t)})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	html, err := svc.RenderBody(context.Background(), "ligne un\nligne deux")
	if err != nil {
		t.Fatalf("RenderBody: %v", err)
	}
	if !strings.Contains(html, "<br") {
		t.Fatalf("expected soft breaks rendered as <br> by default, got %q", html)
	}

	// Any explicit option takes over the whole configuration.
	plain, err := NewService(ServiceConfig{
		Repository: newTestRepository(t),
		ParseOpts:  interfaces.ParseOptions{Extensions: []string{"gfm"}},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	html, err = plain.RenderBody(context.Background(), "ligne un\nligne deux")
	if err != nil {
		t.Fatalf("RenderBody: %v", err)
	}
	if strings.Contains(html, "<br") {
		t.Fatalf("expected soft breaks preserved with explicit options, got %q", html)
	}
}

func TestServiceReadingTimeScenario(t *testing.T) {
	body := strings.TrimSpace(strings.Repeat("mot ", 400))
	meta := interfaces.FrontMatter{Title: "Long billet", Date: "2025-01-01", Locale: "fr"}

	post := Build("long-billet", meta, []byte(body))
	if post.WordCount != 400 {
		t.Fatalf("expected 400 words, got %d", post.WordCount)
	}
	if post.ReadingTime != 2 {
		t.Fatalf("expected 2 minute reading time, got %d", post.ReadingTime)
	}
}
