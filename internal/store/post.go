// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. PostStore is the
// single point of mutation and retrieval for blog posts; it owns slug
// derivation and the slug-keyed upsert semantics.
package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anharfhdn/portfolio/internal/apperr"
	"github.com/anharfhdn/portfolio/internal/models"
	"github.com/anharfhdn/portfolio/internal/slug"
	"github.com/anharfhdn/portfolio/internal/visibility"
)

// postColumns is the canonical column list shared by every query so
// scanPost stays in sync with a single SELECT shape.
const postColumns = `id, slug, title, date, author, category, read_time,
       image, excerpt, content, markdown, status, owner, created_at, updated_at`

// updatableColumns are the columns UpdateFields may touch. Status moves
// only through ChangeStatus, and the slug is the row's identity.
var updatableColumns = map[string]bool{
	"title":     true,
	"date":      true,
	"author":    true,
	"category":  true,
	"read_time": true,
	"image":     true,
	"excerpt":   true,
	"content":   true,
	"markdown":  true,
	"owner":     true,
}

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// List returns the posts eligible under the visibility context, ordered
// by date descending. An empty result is valid and not an error.
func (s *PostStore) List(vctx visibility.Context) ([]models.Post, error) {
	where, args := vctx.Condition()
	rows, err := s.db.Query(`
		SELECT `+postColumns+`
		FROM posts
		WHERE `+where+`
		ORDER BY date DESC, created_at DESC
	`, args...)
	if err != nil {
		return nil, apperr.Store("list posts", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, apperr.Store("scan post", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list posts", err)
	}
	return posts, nil
}

// FindBySlug retrieves a single post under the visibility context.
// Returns nil, nil when no eligible post matches — a miss is a valid
// outcome, distinct from a store failure.
func (s *PostStore) FindBySlug(postSlug string, mode visibility.Mode) (*models.Post, error) {
	vctx := visibility.Context{Mode: mode, Slug: postSlug}
	where, args := vctx.Condition()
	row := s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts
		WHERE `+where+`
	`, args...)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Store("find post by slug", err)
	}
	return p, nil
}

// Upsert inserts or replaces each post, keyed by slug. An empty slug is
// derived from the title. Status defaults to draft exactly here, at
// creation. created_at is preserved across re-upserts of the same slug
// unless the caller explicitly supplies one; updated_at always
// refreshes. Returns the persisted rows in input order.
func (s *PostStore) Upsert(posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return nil, apperr.Validationf("no posts to save")
	}

	prepared := make([]models.Post, len(posts))
	for i, p := range posts {
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Title)
		}
		if p.Slug == "" {
			return nil, apperr.Validationf("post %d: title or slug is required", i)
		}
		if p.Status == "" {
			p.Status = models.StatusDraft
		}
		if !p.Status.Valid() {
			return nil, apperr.Validationf("post %d: unknown status %q", i, p.Status)
		}
		if p.Date == "" {
			p.Date = time.Now().Format("2006-01-02")
		}
		prepared[i] = p
	}

	saved := make([]models.Post, 0, len(prepared))
	for _, p := range prepared {
		row := s.db.QueryRow(`
			INSERT INTO posts (slug, title, date, author, category, read_time,
			                   image, excerpt, content, markdown, status, owner,
			                   created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			        COALESCE($13, now()))
			ON CONFLICT (slug) DO UPDATE SET
				title      = EXCLUDED.title,
				date       = EXCLUDED.date,
				author     = EXCLUDED.author,
				category   = EXCLUDED.category,
				read_time  = EXCLUDED.read_time,
				image      = EXCLUDED.image,
				excerpt    = EXCLUDED.excerpt,
				content    = EXCLUDED.content,
				markdown   = EXCLUDED.markdown,
				status     = EXCLUDED.status,
				owner      = EXCLUDED.owner,
				created_at = COALESCE($13, posts.created_at),
				updated_at = now()
			RETURNING `+postColumns+`
		`, p.Slug, p.Title, p.Date, p.Author, p.Category, p.ReadTime,
			p.Image, p.Excerpt, p.Content, p.Markdown, p.Status, p.Owner,
			p.CreatedAt)

		result, err := scanPost(row)
		if err != nil {
			return nil, apperr.Store(fmt.Sprintf("upsert post %q", p.Slug), err)
		}
		saved = append(saved, *result)
	}
	return saved, nil
}

// UpdateFields applies a partial update to the post with the given
// slug. Keys may use the external readTime spelling; status and slug
// are rejected. Always refreshes updated_at.
func (s *PostStore) UpdateFields(postSlug string, fields map[string]any) (*models.Post, error) {
	if postSlug == "" {
		return nil, apperr.Validationf("slug is required")
	}
	if len(fields) == 0 {
		return nil, apperr.Validationf("updates are required")
	}

	// Resolve the external alias, then validate against the whitelist.
	normalized := make(map[string]any, len(fields))
	for key, val := range fields {
		if key == "readTime" {
			key = "read_time"
		}
		if !updatableColumns[key] {
			return nil, apperr.Validationf("field %q cannot be updated", key)
		}
		normalized[key] = val
	}

	keys := make([]string, 0, len(normalized))
	for key := range normalized {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sets []string
	var args []any
	for i, key := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", key, i+1))
		args = append(args, normalized[key])
	}
	args = append(args, postSlug)

	row := s.db.QueryRow(`
		UPDATE posts
		SET `+strings.Join(sets, ", ")+`, updated_at = now()
		WHERE slug = $`+fmt.Sprint(len(args))+`
		RETURNING `+postColumns,
		args...)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("post %q not found", postSlug)
	}
	if err != nil {
		return nil, apperr.Store("update post", err)
	}
	return p, nil
}

// ChangeStatus transitions the post into the status mapped from the
// action. No state is terminal; any transition is allowed and every one
// refreshes updated_at.
func (s *PostStore) ChangeStatus(postSlug string, action models.Action) (*models.Post, error) {
	if postSlug == "" {
		return nil, apperr.Validationf("slug is required")
	}
	target, ok := action.Target()
	if !ok {
		return nil, apperr.Validationf("unknown action %q", action)
	}

	row := s.db.QueryRow(`
		UPDATE posts
		SET status = $1, updated_at = now()
		WHERE slug = $2
		RETURNING `+postColumns,
		target, postSlug)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("post %q not found", postSlug)
	}
	if err != nil {
		return nil, apperr.Store("change post status", err)
	}
	return p, nil
}

// Delete removes the post permanently, or archives it when permanent is
// false. The soft path is idempotent: archiving an archived post keeps
// the status and still refreshes updated_at. Hard delete returns nil on
// success; soft delete returns the updated row.
func (s *PostStore) Delete(postSlug string, permanent bool) (*models.Post, error) {
	if postSlug == "" {
		return nil, apperr.Validationf("slug is required")
	}

	if permanent {
		result, err := s.db.Exec(`DELETE FROM posts WHERE slug = $1`, postSlug)
		if err != nil {
			return nil, apperr.Store("delete post", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, apperr.Store("delete post", err)
		}
		if n == 0 {
			return nil, apperr.NotFoundf("post %q not found", postSlug)
		}
		return nil, nil
	}

	return s.ChangeStatus(postSlug, models.ActionArchive)
}

// Count returns the total number of posts regardless of status.
func (s *PostStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, apperr.Store("count posts", err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var p models.Post
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Date, &p.Author, &p.Category, &p.ReadTime,
		&p.Image, &p.Excerpt, &p.Content, &p.Markdown, &p.Status, &p.Owner,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = &createdAt
	p.UpdatedAt = &updatedAt
	return &p, nil
}
