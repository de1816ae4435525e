package directory

import (
	"os"
	"strings"
	"testing"
)

func newTestService(t *testing.T, root string, locales ...string) *Service {
	t.Helper()
	svc, err := New(Config{
		FS:      os.DirFS(root),
		Locales: locales,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func TestServiceRequiresFilesystem(t *testing.T) {
	if _, err := New(Config{}); err != ErrFilesystemRequired {
		t.Fatalf("expected ErrFilesystemRequired, got %v", err)
	}
}

func TestAuthorLookup(t *testing.T) {
	svc := newTestService(t, "testdata", "fr", "en")

	author, ok := svc.Author("fr", "marie-dubois")
	if !ok {
		t.Fatal("expected marie-dubois in fr directory")
	}
	if author.Name != "Marie Dubois" {
		t.Fatalf("unexpected name: %q", author.Name)
	}
	if author.Role != "Consultante principale" {
		t.Fatalf("unexpected role: %q", author.Role)
	}
	if author.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a deterministic non-zero ID")
	}

	if _, ok := svc.Author("en", "marie-dubois"); ok {
		t.Fatal("marie-dubois should not exist in en directory")
	}

	again := newTestService(t, "testdata", "fr", "en")
	repeat, _ := again.Author("fr", "marie-dubois")
	if repeat.ID != author.ID {
		t.Fatalf("IDs should be stable across loads: %s vs %s", repeat.ID, author.ID)
	}
}

func TestCategoryLookup(t *testing.T) {
	svc := newTestService(t, "testdata", "fr", "en")

	category, ok := svc.Category("fr", "etudes-de-cas")
	if !ok {
		t.Fatal("expected etudes-de-cas in fr directory")
	}
	if category.Name != "Études de cas" {
		t.Fatalf("unexpected name: %q", category.Name)
	}
	if category.Color != "#8a4b9c" {
		t.Fatalf("unexpected color: %q", category.Color)
	}
}

func TestMissingLocaleFileYieldsEmptyLookup(t *testing.T) {
	// No categories/en.json exists; lookups resolve to nothing, not errors.
	svc := newTestService(t, "testdata", "fr", "en")

	if _, ok := svc.Category("en", "conseils"); ok {
		t.Fatal("expected no categories for en")
	}
	if got := svc.Categories("en"); len(got) != 0 {
		t.Fatalf("expected empty category list, got %d", len(got))
	}
}

func TestUnknownLocaleLookup(t *testing.T) {
	svc := newTestService(t, "testdata", "fr")
	if _, ok := svc.Author("de", "marie-dubois"); ok {
		t.Fatal("unknown locale should resolve nothing")
	}
}

func TestSchemaRejectsEntryWithoutName(t *testing.T) {
	_, err := New(Config{
		FS:      os.DirFS("testdata/invalid"),
		Locales: []string{"fr"},
	})
	if err == nil {
		t.Fatal("expected a schema validation error")
	}
	if !strings.Contains(err.Error(), "validate") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthorsEnumeration(t *testing.T) {
	svc := newTestService(t, "testdata", "fr", "en")
	if got := len(svc.Authors("fr")); got != 2 {
		t.Fatalf("expected 2 fr authors, got %d", got)
	}
	if got := len(svc.Authors("en")); got != 1 {
		t.Fatalf("expected 1 en author, got %d", got)
	}
}
