package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	blog "github.com/goliatone/go-blog"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content/blog", "Path to the blog content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering post files")
		locales    = flag.String("locales", "fr,en", "Comma separated list of locales in fallback order")
		locale     = flag.String("locale", "", "Locale to read from (empty tries each locale in order)")
		slug       = flag.String("slug", "", "Post slug to preview")
		list       = flag.Bool("list", false, "List posts instead of previewing a single one")
		drafts     = flag.Bool("drafts", false, "Include unpublished posts when listing")
		related    = flag.Bool("related", false, "Show related posts for the previewed slug")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML")
		logLevel   = flag.String("log-level", "error", "Log level for module output")
	)

	flag.Parse()

	if !*list && *slug == "" {
		log.Fatalf("--slug is required unless --list is set")
	}

	cfg := blog.DefaultConfig()
	cfg.Content.BasePath = *contentDir
	cfg.Content.Pattern = *pattern
	cfg.Content.Locales = splitLocales(*locales)
	if len(cfg.Content.Locales) > 0 {
		cfg.DefaultLocale = cfg.Content.Locales[0]
	}
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = "console"

	module, err := blog.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap blog module: %v", err)
	}

	ctx := context.Background()

	if *list {
		listPosts(ctx, module, *locale, *drafts)
		return
	}

	post, err := module.Posts().GetPost(ctx, *slug, *locale)
	if err != nil {
		log.Fatalf("load post: %v", err)
	}
	if post == nil {
		log.Fatalf("post %q not found", *slug)
	}

	fmt.Fprintf(os.Stdout, "Slug: %s\nLocale: %s\nDate: %s\nReading time: %d min (%d words)\n\n",
		post.Slug, post.Locale, post.Date.Format("2006-01-02"), post.ReadingTime, post.WordCount)

	if meta, err := json.MarshalIndent(post, "", "  "); err == nil {
		fmt.Fprintf(os.Stdout, "Record:\n%s\n\n", meta)
	}

	if *renderHTML {
		html, err := module.Posts().RenderPost(ctx, post)
		if err != nil {
			log.Fatalf("render post: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", html)
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", post.Content)
	}

	if *related {
		picks, err := module.Posts().GetRelated(ctx, post.Slug, post.Locale, 0)
		if err != nil {
			log.Fatalf("related posts: %v", err)
		}
		fmt.Fprintf(os.Stdout, "\nRelated:\n")
		for _, pick := range picks {
			fmt.Fprintf(os.Stdout, "  %s (%s) %s\n", pick.Slug, pick.Date.Format("2006-01-02"), pick.Title)
		}
	}
}

func listPosts(ctx context.Context, module *blog.Module, locale string, drafts bool) {
	filter := blog.Filter{Locale: locale}
	if drafts {
		all := false
		filter.PublishedOnly = &all
	}

	posts, err := module.Posts().ListPosts(ctx, filter)
	if err != nil {
		log.Fatalf("list posts: %v", err)
	}

	for _, post := range posts {
		state := "published"
		if !post.Published {
			state = "draft"
		}
		fmt.Fprintf(os.Stdout, "%s  %-5s %-10s %s\n", post.Date.Format("2006-01-02"), post.Locale, state, post.Slug)
	}
}

func splitLocales(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
