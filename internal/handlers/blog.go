// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/anharfhdn/portfolio/internal/apperr"
	"github.com/anharfhdn/portfolio/internal/auth"
	"github.com/anharfhdn/portfolio/internal/middleware"
	"github.com/anharfhdn/portfolio/internal/models"
	"github.com/anharfhdn/portfolio/internal/site"
	"github.com/anharfhdn/portfolio/internal/visibility"
)

// maxBodyBytes caps API request bodies. Markdown posts stay well under
// this.
const maxBodyBytes = 1 << 20

// Blog groups the /api/blog handlers. The wallet allow-list only
// matters for admin-mode reads; mutations are gated by middleware
// before they reach these handlers.
type Blog struct {
	posts     PostRepository
	allowList []string
}

// NewBlog creates the blog API handler group.
func NewBlog(posts PostRepository, allowList []string) *Blog {
	return &Blog{posts: posts, allowList: allowList}
}

// List handles GET /api/blog. Query parameters select the view:
// ?slug= narrows to one post, ?admin=true requests the admin view
// (wallet gate applies), ?archived=true selects the admin archived
// listing. A single-slug miss is a null result, not an error.
func (b *Blog) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := visibility.ModePublic
	if q.Get("admin") == "true" {
		if !auth.IsAuthorized(middleware.WalletFromCtx(r.Context()), b.allowList) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"wallet not authorized"}`))
			return
		}
		mode = visibility.ModeAdmin
	}

	if slug := q.Get("slug"); slug != "" {
		post, err := b.posts.FindBySlug(slug, mode)
		if err != nil {
			respondError(w, err)
			return
		}
		// nil marshals to null — the distinct not-found outcome.
		respondData(w, post)
		return
	}

	vctx := visibility.Context{Mode: mode, ShowArchived: q.Get("archived") == "true"}
	posts, err := b.posts.List(vctx)
	if err != nil {
		respondError(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	respondData(w, posts)
}

// Upsert handles POST /api/blog. The body may be {"posts": [...]},
// {"post": {...}}, a bare post object, or a bare array; all shapes are
// accepted uniformly.
func (b *Blog) Upsert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, apperr.Validationf("read request body: %v", err))
		return
	}

	posts, err := decodePosts(body)
	if err != nil {
		respondError(w, err)
		return
	}

	// Record the creating wallet when the caller didn't set one.
	if wallet := middleware.WalletFromCtx(r.Context()); wallet != "" {
		for i := range posts {
			if posts[i].Owner == "" {
				posts[i].Owner = wallet
			}
		}
	}

	saved, err := b.posts.Upsert(posts)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, saved)
}

// Update handles PUT /api/blog: either a status transition
// {"slug": ..., "action": ...} or a partial field update
// {"slug": ..., "updates": {...}}.
func (b *Blog) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug    string         `json:"slug"`
		Action  models.Action  `json:"action"`
		Updates map[string]any `json:"updates"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, apperr.Validationf("invalid JSON body"))
		return
	}

	var post *models.Post
	var err error
	switch {
	case req.Action != "":
		post, err = b.posts.ChangeStatus(req.Slug, req.Action)
	case req.Updates != nil:
		post, err = b.posts.UpdateFields(req.Slug, req.Updates)
	default:
		err = apperr.Validationf("action or updates required")
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, post)
}

// Delete handles DELETE /api/blog?slug=&permanent=. Soft delete
// (the default) archives the post and returns the updated row;
// permanent=true removes the row and returns {"ok": true}.
func (b *Blog) Delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slug := q.Get("slug")
	permanent := q.Get("permanent") == "true"

	post, err := b.posts.Delete(slug, permanent)
	if err != nil {
		respondError(w, err)
		return
	}
	if post != nil {
		respondData(w, post)
		return
	}
	respondData(w, map[string]any{"ok": true})
}

// Categories handles GET /api/blog/categories, returning the suggested
// category set for editor UIs.
func (b *Blog) Categories(w http.ResponseWriter, r *http.Request) {
	respondData(w, site.Categories)
}

// decodePosts accepts the POST body in any of its historical shapes
// and returns the posts to upsert.
func decodePosts(body []byte) ([]models.Post, error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return nil, apperr.Validationf("missing post(s) in request body")
	}

	if raw[0] == '{' {
		var env struct {
			Posts json.RawMessage `json:"posts"`
			Post  json.RawMessage `json:"post"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, apperr.Validationf("invalid JSON body")
		}
		switch {
		case len(env.Posts) > 0 && !bytes.Equal(env.Posts, []byte("null")):
			raw = bytes.TrimSpace(env.Posts)
		case len(env.Post) > 0 && !bytes.Equal(env.Post, []byte("null")):
			raw = bytes.TrimSpace(env.Post)
		}
	}

	if len(raw) > 0 && raw[0] == '[' {
		var posts []models.Post
		if err := json.Unmarshal(raw, &posts); err != nil {
			return nil, apperr.Validationf("invalid JSON body")
		}
		if len(posts) == 0 {
			return nil, apperr.Validationf("missing post(s) in request body")
		}
		return posts, nil
	}

	var p models.Post
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, apperr.Validationf("invalid JSON body")
	}
	return []models.Post{p}, nil
}
