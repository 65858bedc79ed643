// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package visibility decides which blog posts a caller may see. The
// rules are pure functions over a request context; the Postgres store
// consumes the equivalent SQL condition so the database evaluates the
// same rules it would be handed back by Apply.
package visibility

import (
	"sort"

	"github.com/anharfhdn/portfolio/internal/models"
)

// Mode distinguishes the public site from the admin dashboard.
type Mode string

const (
	ModePublic Mode = "public"
	ModeAdmin  Mode = "admin"
)

// Context describes a caller's view of the post table.
//
// Slug, when set, narrows the result to at most one post. ShowArchived
// only applies to admin listings: false hides archived posts, true
// shows only archived posts. The two admin listings partition the table.
type Context struct {
	Mode         Mode
	Slug         string
	ShowArchived bool
}

// Public returns the context for the public listing.
func Public() Context { return Context{Mode: ModePublic} }

// PublicSlug returns the context for a public single-post lookup.
func PublicSlug(slug string) Context { return Context{Mode: ModePublic, Slug: slug} }

// Admin returns the context for the admin dashboard listing.
func Admin(showArchived bool) Context {
	return Context{Mode: ModeAdmin, ShowArchived: showArchived}
}

// AdminSlug returns the context for an admin single-post lookup, which
// ignores status.
func AdminSlug(slug string) Context { return Context{Mode: ModeAdmin, Slug: slug} }

// Visible reports whether the post is eligible under the context.
//
// Rule order: a slug lookup matches exactly one slug, and in public
// mode additionally requires published status so drafts cannot be
// leaked by slug guessing. Without a slug, admin listings split on
// archived status and public listings see only published posts.
func (c Context) Visible(p *models.Post) bool {
	if c.Slug != "" {
		if p.Slug != c.Slug {
			return false
		}
		if c.Mode == ModePublic {
			return p.IsPublished()
		}
		return true
	}

	if c.Mode == ModeAdmin {
		if c.ShowArchived {
			return p.Status == models.StatusArchived
		}
		return p.Status != models.StatusArchived
	}

	return p.IsPublished()
}

// Apply filters posts by the context and orders multi-row results by
// date descending. The sort is stable so ties keep the underlying
// store's order. The input slice is not modified.
func (c Context) Apply(posts []models.Post) []models.Post {
	var out []models.Post
	for i := range posts {
		if c.Visible(&posts[i]) {
			out = append(out, posts[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Condition returns the SQL WHERE fragment equivalent to Visible,
// with numbered placeholders starting at $1, plus its arguments.
func (c Context) Condition() (string, []any) {
	if c.Slug != "" {
		if c.Mode == ModePublic {
			return "slug = $1 AND status = $2", []any{c.Slug, models.StatusPublished}
		}
		return "slug = $1", []any{c.Slug}
	}

	if c.Mode == ModeAdmin {
		if c.ShowArchived {
			return "status = $1", []any{models.StatusArchived}
		}
		return "status <> $1", []any{models.StatusArchived}
	}

	return "status = $1", []any{models.StatusPublished}
}
