// Package markdown implements frontmatter parsing, document loading, and
// Markdown-to-HTML rendering for filesystem-backed blog posts.
package markdown
