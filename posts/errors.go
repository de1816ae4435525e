package posts

import "errors"

var (
	ErrRepositoryRequired = errors.New("posts: repository is required")
	ErrPostRequired       = errors.New("posts: post is required")
)
