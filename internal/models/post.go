// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted entities of the portfolio site.
// The blog post is the sole persisted entity; everything else on the
// site is static content.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status represents the publishing state of a blog post. The stored
// column is NOT NULL with a 'draft' default, so the default is applied
// exactly once, at creation, and never re-derived downstream.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Action is a status-transition verb accepted by the PUT endpoint.
type Action string

const (
	ActionPublish   Action = "publish"
	ActionDraft     Action = "draft"
	ActionArchive   Action = "archive"
	ActionUnarchive Action = "unarchive"
)

// Target returns the status that the action transitions a post into.
// Unarchive deliberately maps to published rather than restoring the
// pre-archive status; that is the historical behavior and callers
// depend on it.
func (a Action) Target() (Status, bool) {
	switch a {
	case ActionPublish, ActionUnarchive:
		return StatusPublished, true
	case ActionDraft:
		return StatusDraft, true
	case ActionArchive:
		return StatusArchived, true
	}
	return "", false
}

// Post is a blog post. The slug is its primary external identifier;
// writes are keyed by slug, and a colliding slug replaces the existing
// row rather than erroring.
//
// Markdown is the authoritative source body. Content holds legacy
// pre-rendered HTML from before the Markdown editor existed and is only
// consulted when Markdown is empty.
type Post struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Date     string    `json:"date,omitempty"`
	Author   string    `json:"author,omitempty"`
	Category string    `json:"category,omitempty"`
	ReadTime string    `json:"readTime,omitempty"`
	Image    string    `json:"image,omitempty"`
	Excerpt  string    `json:"excerpt,omitempty"`
	Content  string    `json:"content,omitempty"`
	Markdown string    `json:"markdown,omitempty"`
	Status   Status    `json:"status,omitempty"`
	Owner    string    `json:"owner,omitempty"`

	// CreatedAt is a pointer so the upsert path can tell "caller
	// supplied a timestamp" apart from "preserve the stored one".
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UnmarshalJSON accepts the read-time field under both its external
// name (readTime) and its storage name (read_time). The camelCase
// spelling wins when both are present. This is the single place the
// alias is resolved; the rest of the codebase only sees ReadTime.
func (p *Post) UnmarshalJSON(b []byte) error {
	type alias Post
	aux := struct {
		*alias
		ReadTimeSnake *string `json:"read_time"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if p.ReadTime == "" && aux.ReadTimeSnake != nil {
		p.ReadTime = *aux.ReadTimeSnake
	}
	return nil
}

// IsPublished returns true if the post is publicly visible.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// Body returns the source text to render: Markdown when present,
// otherwise the legacy HTML content.
func (p *Post) Body() (source string, isMarkdown bool) {
	if p.Markdown != "" {
		return p.Markdown, true
	}
	return p.Content, false
}
