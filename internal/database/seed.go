package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// seedPost is a development fixture row.
type seedPost struct {
	slug, title, date, author, category, readTime, image, excerpt, markdown string
}

// seedPosts are the starter posts inserted into empty development
// databases so the blog pages have something to show.
var seedPosts = []seedPost{
	{
		slug:     "mastering-nextjs-15",
		title:    "Mastering Next.js 15 and Turbopack",
		date:     "2026-01-20",
		author:   "Anhar Fahrudin",
		category: "Web Development",
		readTime: "5 min read",
		image:    "https://images.unsplash.com/photo-1618477247222-acbdb0e159b3?q=80&w=1000&auto=format&fit=crop",
		excerpt:  "Explore the latest features of Next.js 15, including enhanced performance with Turbopack and the new cache API.",
		markdown: `## The Future of Web Development

Next.js 15 introduces several game-changing features that streamline the development process and improve end-user performance. One of the most significant additions is the stable release of Turbopack, which offers lightning-fast HMR and build times.

### Key Features

- Stable Turbopack for local development
- Improved caching strategies
- Enhanced partial prerendering
- React 19 support

In this post, we'll dive deep into how you can migrate your existing projects and leverage these new tools to build better software.`,
	},
	{
		slug:     "minimalist-design-2026",
		title:    "Why Minimalist Design Wins in 2026",
		date:     "2026-01-15",
		author:   "Anhar Fahrudin",
		category: "Opinion",
		readTime: "4 min read",
		image:    "https://images.unsplash.com/photo-1494438639946-1ebd1d20bf85?q=80&w=1000&auto=format&fit=crop",
		excerpt:  "Minimalism isn't just an aesthetic choice anymore; it's a performance and usability necessity for modern web apps.",
		markdown: `## Less is More

As web applications become more complex, users are increasingly drawn to interfaces that are simple, clear, and direct. Minimalist design focuses on the essentials, reducing cognitive load and improving focus.

### Core Principles

1. Purposeful Whitespace: Give your content room to breathe.
2. Typography-driven UI: Let the fonts do the heavy lifting.
3. Limited Color Palette: Use color to guide action, not distract.

By following these principles, you can create experiences that feel both premium and approachable.`,
	},
}

// Seed inserts starter posts into an empty development database.
// It is a no-op when any posts already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return fmt.Errorf("seed count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedPosts {
		_, err := db.Exec(`
			INSERT INTO posts (slug, title, date, author, category, read_time,
			                   image, excerpt, markdown, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'published')
			ON CONFLICT (slug) DO NOTHING
		`, p.slug, p.title, p.date, p.author, p.category, p.readTime,
			p.image, p.excerpt, p.markdown)
		if err != nil {
			return fmt.Errorf("seed insert %q: %w", p.slug, err)
		}
	}

	slog.Info("database seeded", "posts", len(seedPosts))
	return nil
}
