// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio site. It organizes routes into the public pages and the
// blog API, with the wallet gate on mutating API routes.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anharfhdn/portfolio/internal/handlers"
	"github.com/anharfhdn/portfolio/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(blog *handlers.Blog, public *handlers.Public, limiter *middleware.RateLimiter, allowList []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadWallet)

	// Health check — no gating.
	r.Get("/health", healthHandler)

	// Blog API. Reads are open (the admin view enforces the wallet
	// allow-list per request); writes require an authorized wallet and
	// are rate limited.
	r.Route("/api/blog", func(r chi.Router) {
		r.Get("/", blog.List)
		r.Get("/categories", blog.Categories)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(allowList))
			r.Use(limiter.Middleware)
			r.Post("/", blog.Upsert)
			r.Put("/", blog.Update)
			r.Delete("/", blog.Delete)
		})
	})

	// Public pages.
	r.Get("/", public.Homepage)
	r.Get("/blog", public.BlogIndex)
	r.Get("/blog/{slug}", public.BlogPost)
	r.Get("/resume", public.Resume)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
