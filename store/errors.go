package store

import "errors"

var (
	// ErrPostExists is returned by Create when the target file already exists.
	ErrPostExists = errors.New("store: post already exists")
	// ErrPostNotFound is returned by mutations that target a missing post file.
	ErrPostNotFound = errors.New("store: post not found")
	// ErrUnknownLocale is returned when a request names a locale the store was
	// not configured with.
	ErrUnknownLocale = errors.New("store: unknown locale")
	// ErrInvalidSlug is returned when a slug fails canonical-form validation.
	ErrInvalidSlug = errors.New("store: invalid slug")
)
