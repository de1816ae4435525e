package markdown

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/fr/exemple-complet.md")

	fm, body := ParseFrontMatter(data)

	if fm.Title != "Exemple complet" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Date != "2025-04-15" {
		t.Fatalf("FrontMatter Date mismatch, got %q", fm.Date)
	}
	if fm.Locale != "fr" {
		t.Fatalf("FrontMatter Locale mismatch, got %q", fm.Locale)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "gestion" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Published == nil || !*fm.Published {
		t.Fatalf("FrontMatter Published mismatch: %#v", fm.Published)
	}
	if fm.SEO.Description != "Billet d'exemple pour les tests." {
		t.Fatalf("FrontMatter SEO mismatch: %#v", fm.SEO)
	}
	if len(fm.RelatedPosts) != 1 || fm.RelatedPosts[0] != "autre-billet" {
		t.Fatalf("FrontMatter RelatedPosts mismatch: %#v", fm.RelatedPosts)
	}
	if fm.Custom["customFlag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["title"] != "Exemple complet" {
		t.Fatalf("FrontMatter Raw title missing: %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Exemple complet") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
	if strings.Contains(string(body), "customFlag") {
		t.Fatalf("metadata block leaked into body: %q", string(body))
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	data := readFixture(t, "testdata/fr/sans-entete.md")

	fm, body := ParseFrontMatter(data)

	if fm.Title != "" {
		t.Fatalf("expected empty metadata, got title %q", fm.Title)
	}
	if string(body) != string(data) {
		t.Fatalf("expected full source as body, got %q", string(body))
	}
}

func TestParseFrontMatterMalformedYAML(t *testing.T) {
	source := []byte("---\ntitle: [unclosed\n---\n\nBody text.\n")

	fm, body := ParseFrontMatter(source)

	if fm.Title != "" {
		t.Fatalf("expected empty metadata for malformed block, got %q", fm.Title)
	}
	if len(body) == 0 {
		t.Fatal("expected body content despite malformed metadata")
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestGoldmarkParser_GFMTables(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Extensions: []string{"gfm"}})

	html, err := parser.Parse([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<table>") {
		t.Fatalf("expected table in HTML output, got %q", got)
	}
	if !strings.Contains(got, "<del>gone</del>") {
		t.Fatalf("expected strikethrough in HTML output, got %q", got)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Locales: []string{"fr", "en"}})

	doc, err := loader.LoadFile(context.Background(), "fr", "exemple-complet")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.FilePath != "fr/exemple-complet.md" {
		t.Fatalf("unexpected FilePath: %q", doc.FilePath)
	}
	if doc.Locale != "fr" {
		t.Fatalf("unexpected Locale: %q", doc.Locale)
	}
	if doc.LastModified.IsZero() {
		t.Fatal("expected LastModified to be set")
	}
	if doc.FrontMatter.Title != "Exemple complet" {
		t.Fatalf("unexpected title: %q", doc.FrontMatter.Title)
	}
}

func TestLoaderLoadFileMissing(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Locales: []string{"fr"}})

	_, err := loader.LoadFile(context.Background(), "fr", "absent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoaderLoadLocaleSkipsNonMatching(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Locales: []string{"fr", "en"}})

	docs, err := loader.LoadLocale(context.Background(), "en")
	if err != nil {
		t.Fatalf("LoadLocale: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document (txt file skipped), got %d", len(docs))
	}
	if docs[0].FilePath != "en/plain-post.md" {
		t.Fatalf("unexpected FilePath: %q", docs[0].FilePath)
	}
}

func TestLoaderMissingLocaleDirectory(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Locales: []string{"de"}})

	docs, err := loader.LoadLocale(context.Background(), "de")
	if err != nil {
		t.Fatalf("LoadLocale: %v", err)
	}
	if docs != nil {
		t.Fatalf("expected no documents for missing locale, got %d", len(docs))
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Locales: []string{"fr", "en"}})

	docs, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents across locales, got %d", len(docs))
	}
}
