package main

import (
	"context"
	"flag"
	"log"

	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/handlers"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/config"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/schema"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/store"
)

// Seeds the built-in testimonials and projects into the document store so
// fresh deployments serve real documents instead of the baked-in fallback.
func main() {
	dryRun := flag.Bool("dry-run", false, "write to an in-memory store and print what would be inserted")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	var gw store.Gateway
	if *dryRun {
		log.Printf("dry run: using in-memory store")
		gw = store.NewMemory()
	} else {
		if !cfg.MongoDB.Configured() {
			log.Fatal("DATABASE_URL and DATABASE_NAME must be set (or pass -dry-run)")
		}
		st, err := store.Open(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
		if err != nil {
			log.Fatalf("connect to MongoDB: %v", err)
		}
		defer st.Close(ctx)
		gw = st
	}

	testimonials := handlers.DefaultTestimonials()
	for _, tm := range testimonials {
		id, err := gw.Insert(ctx, schema.CollectionTestimonial, tm)
		if err != nil {
			log.Fatalf("insert testimonial %q: %v", tm.Author, err)
		}
		log.Printf("testimonial %q -> %s", tm.Author, id)
	}

	projects := handlers.DefaultProjects()
	for _, p := range projects {
		id, err := gw.Insert(ctx, schema.CollectionProject, p)
		if err != nil {
			log.Fatalf("insert project %q: %v", p.Title, err)
		}
		log.Printf("project %q -> %s", p.Title, id)
	}

	log.Printf("seeded %d testimonials and %d projects", len(testimonials), len(projects))
}
