package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostUUID returns the stable identity for a post. Posts are keyed per locale;
// the same slug in two locales is two distinct entities.
func PostUUID(locale, slug string) uuid.UUID {
	return UUID("go-blog:post:" + strings.ToLower(strings.TrimSpace(locale)) + ":" + strings.TrimSpace(slug))
}

// AuthorUUID returns the stable identity for an author directory entry.
func AuthorUUID(locale, slug string) uuid.UUID {
	return UUID("go-blog:author:" + strings.ToLower(strings.TrimSpace(locale)) + ":" + strings.TrimSpace(slug))
}

// CategoryUUID returns the stable identity for a category directory entry.
func CategoryUUID(locale, slug string) uuid.UUID {
	return UUID("go-blog:category:" + strings.ToLower(strings.TrimSpace(locale)) + ":" + strings.TrimSpace(slug))
}
