// handler_test.go provides shared test infrastructure for handler
// tests: an in-memory PostRepository so the HTTP surface can be tested
// without PostgreSQL. The fake applies the same visibility rules
// through visibility.Apply that the real store pushes into SQL.
package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/anharfhdn/portfolio/internal/apperr"
	"github.com/anharfhdn/portfolio/internal/models"
	"github.com/anharfhdn/portfolio/internal/slug"
	"github.com/anharfhdn/portfolio/internal/visibility"
)

type memRepo struct {
	posts map[string]models.Post // keyed by slug
	err   error                  // when set, every method fails with it
}

func newMemRepo() *memRepo {
	return &memRepo{posts: make(map[string]models.Post)}
}

func (m *memRepo) all() []models.Post {
	out := make([]models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, p)
	}
	return out
}

func (m *memRepo) List(vctx visibility.Context) ([]models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	return vctx.Apply(m.all()), nil
}

func (m *memRepo) FindBySlug(postSlug string, mode visibility.Mode) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	vctx := visibility.Context{Mode: mode, Slug: postSlug}
	matches := vctx.Apply(m.all())
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (m *memRepo) Upsert(posts []models.Post) ([]models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(posts) == 0 {
		return nil, apperr.Validationf("no posts to save")
	}

	now := time.Now()
	var saved []models.Post
	for _, p := range posts {
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Title)
		}
		if p.Slug == "" {
			return nil, apperr.Validationf("title or slug is required")
		}
		if p.Status == "" {
			p.Status = models.StatusDraft
		}
		if p.Date == "" {
			p.Date = now.Format("2006-01-02")
		}
		if existing, ok := m.posts[p.Slug]; ok {
			p.ID = existing.ID
			if p.CreatedAt == nil {
				p.CreatedAt = existing.CreatedAt
			}
		} else {
			p.ID = uuid.New()
			if p.CreatedAt == nil {
				created := now
				p.CreatedAt = &created
			}
		}
		updated := now
		p.UpdatedAt = &updated
		m.posts[p.Slug] = p
		saved = append(saved, p)
	}
	return saved, nil
}

func (m *memRepo) UpdateFields(postSlug string, fields map[string]any) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	if postSlug == "" {
		return nil, apperr.Validationf("slug is required")
	}
	if len(fields) == 0 {
		return nil, apperr.Validationf("updates are required")
	}
	p, ok := m.posts[postSlug]
	if !ok {
		return nil, apperr.NotFoundf("post %q not found", postSlug)
	}
	for key, val := range fields {
		s, _ := val.(string)
		switch key {
		case "title":
			p.Title = s
		case "date":
			p.Date = s
		case "author":
			p.Author = s
		case "category":
			p.Category = s
		case "read_time", "readTime":
			p.ReadTime = s
		case "image":
			p.Image = s
		case "excerpt":
			p.Excerpt = s
		case "content":
			p.Content = s
		case "markdown":
			p.Markdown = s
		case "owner":
			p.Owner = s
		default:
			return nil, apperr.Validationf("field %q cannot be updated", key)
		}
	}
	updated := time.Now()
	p.UpdatedAt = &updated
	m.posts[postSlug] = p
	return &p, nil
}

func (m *memRepo) ChangeStatus(postSlug string, action models.Action) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	if postSlug == "" {
		return nil, apperr.Validationf("slug is required")
	}
	target, ok := action.Target()
	if !ok {
		return nil, apperr.Validationf("unknown action %q", action)
	}
	p, found := m.posts[postSlug]
	if !found {
		return nil, apperr.NotFoundf("post %q not found", postSlug)
	}
	p.Status = target
	updated := time.Now()
	p.UpdatedAt = &updated
	m.posts[postSlug] = p
	return &p, nil
}

func (m *memRepo) Delete(postSlug string, permanent bool) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	if postSlug == "" {
		return nil, apperr.Validationf("slug is required")
	}
	if permanent {
		if _, ok := m.posts[postSlug]; !ok {
			return nil, apperr.NotFoundf("post %q not found", postSlug)
		}
		delete(m.posts, postSlug)
		return nil, nil
	}
	return m.ChangeStatus(postSlug, models.ActionArchive)
}

func (m *memRepo) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.posts), nil
}
