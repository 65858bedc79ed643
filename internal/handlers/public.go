// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/anharfhdn/portfolio/internal/markdown"
	"github.com/anharfhdn/portfolio/internal/models"
	"github.com/anharfhdn/portfolio/internal/render"
	"github.com/anharfhdn/portfolio/internal/site"
	"github.com/anharfhdn/portfolio/internal/visibility"
)

// homePostPreview caps the latest-writing section on the homepage.
const homePostPreview = 3

// Public groups handlers for the public-facing site: the portfolio
// homepage, blog listing and reading views, and the resume download.
type Public struct {
	renderer   *render.Renderer
	posts      PostRepository
	resumePath string
}

// NewPublic creates the public handler group. resumePath may be empty,
// in which case /resume answers 404.
func NewPublic(renderer *render.Renderer, posts PostRepository, resumePath string) *Public {
	return &Public{renderer: renderer, posts: posts, resumePath: resumePath}
}

// Homepage renders the portfolio landing page with a preview of the
// latest published posts. A post listing failure degrades to an empty
// preview rather than an error page.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	posts, err := p.posts.List(visibility.Public())
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		posts = nil
	}
	if len(posts) > homePostPreview {
		posts = posts[:homePostPreview]
	}

	p.renderer.Page(w, "home", &render.PageData{
		Title: "Home",
		Data: map[string]any{
			"Profile":    site.Owner,
			"Projects":   site.Projects,
			"Philosophy": site.Philosophy,
			"Posts":      posts,
		},
	})
}

// BlogIndex renders the public blog listing.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := p.posts.List(visibility.Public())
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		posts = nil
	}

	p.renderer.Page(w, "blog_list", &render.PageData{
		Title: "Blog",
		Data: map[string]any{
			"Posts": posts,
			"Count": len(posts),
		},
	})
}

// BlogPost renders a single published post. Drafts and archived posts
// are indistinguishable from missing ones here.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := p.posts.FindBySlug(slug, visibility.ModePublic)
	if err != nil {
		slog.Error("find post by slug failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	p.renderer.Page(w, "blog_post", &render.PageData{
		Title: post.Title,
		Data: map[string]any{
			"Post": *post,
			"Body": renderBody(post),
		},
	})
}

// Resume serves the configured resume file, or 404 when none is set.
func (p *Public) Resume(w http.ResponseWriter, r *http.Request) {
	if p.resumePath == "" {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(p.resumePath); err != nil {
		slog.Warn("resume file not readable", "path", p.resumePath, "error", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="anhar-fahrudin-resume.pdf"`)
	http.ServeFile(w, r, p.resumePath)
}

// renderBody converts a post body to HTML: Markdown through goldmark,
// legacy pre-rendered HTML through the sanitizer.
func renderBody(post *models.Post) string {
	source, isMarkdown := post.Body()
	if !isMarkdown {
		return markdown.SanitizeHTML(source)
	}
	html, err := markdown.ToHTML(source)
	if err != nil {
		slog.Error("markdown render failed", "slug", post.Slug, "error", err)
		return ""
	}
	return html
}
