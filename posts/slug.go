package posts

import (
	"regexp"
	"strings"
	"unicode"

	goslug "github.com/goliatone/go-slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug length bounds enforced by IsValidSlug.
const (
	SlugMinLength = 3
	SlugMaxLength = 100
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = goslug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return goslug.Default()
}

// NormalizeSlug applies the shared normalization rules to an authored slug.
func NormalizeSlug(value string) (string, error) {
	return goslug.Normalize(value)
}

// IsValidSlug reports whether s is a URL-safe post identifier: lowercase
// alphanumerics separated by single hyphens, between 3 and 100 characters.
func IsValidSlug(s string) bool {
	if len(s) < SlugMinLength || len(s) > SlugMaxLength {
		return false
	}
	return slugPattern.MatchString(s)
}

// Slugify derives a slug from a post title: lowercase, diacritics folded to
// ASCII, characters outside [a-z0-9 whitespace hyphen] removed, whitespace
// and hyphen runs collapsed to single hyphens, leading/trailing hyphens
// trimmed. Deterministic: the same title always yields the same slug.
func Slugify(title string) string {
	folded := foldDiacritics(strings.ToLower(strings.TrimSpace(title)))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}

// foldDiacritics decomposes accented characters and strips the combining
// marks, so "é" becomes "e". On transform failure the input is returned
// unchanged; unfoldable runes are dropped later by Slugify's character filter.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
