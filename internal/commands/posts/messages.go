package postscmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	createPostMessageType   = "blog.posts.create"
	updatePostMessageType   = "blog.posts.update"
	setPublishedMessageType = "blog.posts.set_published"
	deletePostMessageType   = "blog.posts.delete"
)

// CreatePostCommand requests creation of a new post file. Slug is optional and
// derived from Title when empty; deeper field validation (date format, slug
// shape) happens in the store.
type CreatePostCommand struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug,omitempty"`
	Locale       string   `json:"locale"`
	Date         string   `json:"date"`
	Author       string   `json:"author,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
	Image        string   `json:"image,omitempty"`
	Published    *bool    `json:"published,omitempty"`
	RelatedPosts []string `json:"relatedPosts,omitempty"`
	Body         string   `json:"body"`
}

// Type implements command.Message.
func (CreatePostCommand) Type() string { return createPostMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreatePostCommand) Validate() error {
	errs := validation.Errors{}
	if m.Title == "" {
		errs["title"] = validation.NewError("blog.posts.create.title_required", "title is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("blog.posts.create.locale_required", "locale is required")
	}
	if m.Date == "" {
		errs["date"] = validation.NewError("blog.posts.create.date_required", "date is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePostCommand rewrites an existing post file.
type UpdatePostCommand struct {
	Slug         string   `json:"slug"`
	Locale       string   `json:"locale"`
	Title        string   `json:"title,omitempty"`
	Date         string   `json:"date,omitempty"`
	Author       string   `json:"author,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
	Image        string   `json:"image,omitempty"`
	Published    *bool    `json:"published,omitempty"`
	RelatedPosts []string `json:"relatedPosts,omitempty"`
	Body         string   `json:"body"`
}

// Type implements command.Message.
func (UpdatePostCommand) Type() string { return updatePostMessageType }

// Validate ensures the message identifies a target post.
func (m UpdatePostCommand) Validate() error {
	errs := validation.Errors{}
	if m.Slug == "" {
		errs["slug"] = validation.NewError("blog.posts.update.slug_required", "slug is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("blog.posts.update.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetPublishedCommand toggles a post's published flag without touching the
// rest of the file.
type SetPublishedCommand struct {
	Slug      string `json:"slug"`
	Locale    string `json:"locale"`
	Published bool   `json:"published"`
}

// Type implements command.Message.
func (SetPublishedCommand) Type() string { return setPublishedMessageType }

// Validate ensures the message identifies a target post.
func (m SetPublishedCommand) Validate() error {
	errs := validation.Errors{}
	if m.Slug == "" {
		errs["slug"] = validation.NewError("blog.posts.set_published.slug_required", "slug is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("blog.posts.set_published.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeletePostCommand removes a post file.
type DeletePostCommand struct {
	Slug   string `json:"slug"`
	Locale string `json:"locale"`
}

// Type implements command.Message.
func (DeletePostCommand) Type() string { return deletePostMessageType }

// Validate ensures the message identifies a target post.
func (m DeletePostCommand) Validate() error {
	errs := validation.Errors{}
	if m.Slug == "" {
		errs["slug"] = validation.NewError("blog.posts.delete.slug_required", "slug is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("blog.posts.delete.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
