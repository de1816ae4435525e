// Package postscmd exposes post authoring operations as command handlers over
// the shared handler foundation, so callers get validation, timeouts, logging,
// and error categorisation without touching the store directly.
package postscmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/store"
)

var (
	_ command.Commander[CreatePostCommand]   = (*CreatePostHandler)(nil)
	_ command.Commander[UpdatePostCommand]   = (*UpdatePostHandler)(nil)
	_ command.Commander[SetPublishedCommand] = (*SetPublishedHandler)(nil)
	_ command.Commander[DeletePostCommand]   = (*DeletePostHandler)(nil)
)

// CreatePostHandler writes new post files through the store.
type CreatePostHandler struct {
	inner *commands.Handler[CreatePostCommand]
}

// NewCreatePostHandler constructs a handler wired to the provided store.
func NewCreatePostHandler(s *store.Store, logger interfaces.Logger, opts ...commands.HandlerOption[CreatePostCommand]) *CreatePostHandler {
	exec := func(ctx context.Context, msg CreatePostCommand) error {
		_, err := s.Create(ctx, store.CreatePostRequest{
			Title:        msg.Title,
			Slug:         msg.Slug,
			Locale:       msg.Locale,
			Date:         msg.Date,
			Author:       msg.Author,
			Category:     msg.Category,
			Tags:         msg.Tags,
			Excerpt:      msg.Excerpt,
			Image:        msg.Image,
			Published:    msg.Published,
			RelatedPosts: msg.RelatedPosts,
			Body:         msg.Body,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreatePostCommand]{
		commands.WithLogger[CreatePostCommand](logger),
		commands.WithOperation[CreatePostCommand]("posts.create"),
		commands.WithMessageFields[CreatePostCommand](func(msg CreatePostCommand) map[string]any {
			return map[string]any{"slug": msg.Slug, "locale": msg.Locale}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreatePostHandler{inner: commands.NewHandler[CreatePostCommand](exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreatePostCommand].Execute.
func (h *CreatePostHandler) Execute(ctx context.Context, msg CreatePostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdatePostHandler rewrites existing post files through the store.
type UpdatePostHandler struct {
	inner *commands.Handler[UpdatePostCommand]
}

// NewUpdatePostHandler constructs a handler wired to the provided store.
func NewUpdatePostHandler(s *store.Store, logger interfaces.Logger, opts ...commands.HandlerOption[UpdatePostCommand]) *UpdatePostHandler {
	exec := func(ctx context.Context, msg UpdatePostCommand) error {
		_, err := s.Update(ctx, store.UpdatePostRequest{
			Slug:         msg.Slug,
			Locale:       msg.Locale,
			Title:        msg.Title,
			Date:         msg.Date,
			Author:       msg.Author,
			Category:     msg.Category,
			Tags:         msg.Tags,
			Excerpt:      msg.Excerpt,
			Image:        msg.Image,
			Published:    msg.Published,
			RelatedPosts: msg.RelatedPosts,
			Body:         msg.Body,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdatePostCommand]{
		commands.WithLogger[UpdatePostCommand](logger),
		commands.WithOperation[UpdatePostCommand]("posts.update"),
		commands.WithMessageFields[UpdatePostCommand](func(msg UpdatePostCommand) map[string]any {
			return map[string]any{"slug": msg.Slug, "locale": msg.Locale}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdatePostHandler{inner: commands.NewHandler[UpdatePostCommand](exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UpdatePostCommand].Execute.
func (h *UpdatePostHandler) Execute(ctx context.Context, msg UpdatePostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SetPublishedHandler toggles the published flag on post files.
type SetPublishedHandler struct {
	inner *commands.Handler[SetPublishedCommand]
}

// NewSetPublishedHandler constructs a handler wired to the provided store.
func NewSetPublishedHandler(s *store.Store, logger interfaces.Logger, opts ...commands.HandlerOption[SetPublishedCommand]) *SetPublishedHandler {
	exec := func(ctx context.Context, msg SetPublishedCommand) error {
		return s.SetPublished(ctx, msg.Locale, msg.Slug, msg.Published)
	}

	handlerOpts := []commands.HandlerOption[SetPublishedCommand]{
		commands.WithLogger[SetPublishedCommand](logger),
		commands.WithOperation[SetPublishedCommand]("posts.set_published"),
		commands.WithMessageFields[SetPublishedCommand](func(msg SetPublishedCommand) map[string]any {
			return map[string]any{"slug": msg.Slug, "locale": msg.Locale, "published": msg.Published}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SetPublishedHandler{inner: commands.NewHandler[SetPublishedCommand](exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SetPublishedCommand].Execute.
func (h *SetPublishedHandler) Execute(ctx context.Context, msg SetPublishedCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeletePostHandler removes post files through the store.
type DeletePostHandler struct {
	inner *commands.Handler[DeletePostCommand]
}

// NewDeletePostHandler constructs a handler wired to the provided store.
func NewDeletePostHandler(s *store.Store, logger interfaces.Logger, opts ...commands.HandlerOption[DeletePostCommand]) *DeletePostHandler {
	exec := func(ctx context.Context, msg DeletePostCommand) error {
		return s.Delete(ctx, msg.Locale, msg.Slug)
	}

	handlerOpts := []commands.HandlerOption[DeletePostCommand]{
		commands.WithLogger[DeletePostCommand](logger),
		commands.WithOperation[DeletePostCommand]("posts.delete"),
		commands.WithMessageFields[DeletePostCommand](func(msg DeletePostCommand) map[string]any {
			return map[string]any{"slug": msg.Slug, "locale": msg.Locale}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeletePostHandler{inner: commands.NewHandler[DeletePostCommand](exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeletePostCommand].Execute.
func (h *DeletePostHandler) Execute(ctx context.Context, msg DeletePostCommand) error {
	return h.inner.Execute(ctx, msg)
}
