package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/schema"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/logger"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/metrics"
)

// DefaultTestimonials returns the canned testimonials served whenever the
// store has none. The slice is freshly allocated on each call.
func DefaultTestimonials() []schema.Testimonial {
	return []schema.Testimonial{
		{Author: "Ava Chen", Role: "Creative Director", Quote: "A visionary with a rare blend of artistry and engineering.", AvatarURL: "https://i.pravatar.cc/150?img=68"},
		{Author: "Liam Patel", Role: "CTO, Nova Labs", Quote: "Turns impossible ideas into delightful realities.", AvatarURL: "https://i.pravatar.cc/150?img=12"},
		{Author: "Maya Rodríguez", Role: "Founder, Helix Studio", Quote: "Every interaction feels like magic—truly next-level.", AvatarURL: "https://i.pravatar.cc/150?img=32"},
	}
}

// DefaultProjects returns the canned portfolio entries served whenever the
// store has none.
func DefaultProjects() []schema.Project {
	return []schema.Project{
		{
			Title:       "Nebula UI System",
			Description: "A component library with cinematic motion and generative themes.",
			Tags:        []string{"Design System", "Framer Motion", "AI Skinning"},
			ImageURL:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=1400&auto=format&fit=crop",
			DemoURL:     "#",
			SourceURL:   "#",
		},
		{
			Title:       "Aurora Graph",
			Description: "Real-time data artistry—particles, wavefields, living charts.",
			Tags:        []string{"WebGL", "D3", "Shaders"},
			ImageURL:    "https://images.unsplash.com/photo-1507874457470-272b3c8d8ee2?q=80&w=1400&auto=format&fit=crop",
			DemoURL:     "#",
			SourceURL:   "#",
		},
		{
			Title:       "Echo Spaces",
			Description: "Immersive 3D microsites with spatial audio and parallax.",
			Tags:        []string{"Three.js", "Audio", "Spline"},
			ImageURL:    "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?q=80&w=1400&auto=format&fit=crop",
			DemoURL:     "#",
			SourceURL:   "#",
		},
	}
}

// GetTestimonials lists stored testimonials, falling back to the built-in
// set when the store is empty, unreachable, or holds broken documents.
// The endpoint always answers 200.
func (h *PortfolioHandler) GetTestimonials(c *gin.Context) {
	docs, err := h.store.FetchAll(c.Request.Context(), schema.CollectionTestimonial)
	if err != nil {
		logger.Warnf("testimonials: store read failed, serving defaults: %v", err)
		metrics.FallbackServed.WithLabelValues("testimonials", "store_error").Inc()
		c.JSON(http.StatusOK, DefaultTestimonials())
		return
	}

	out := make([]schema.Testimonial, 0, len(docs))
	for _, d := range docs {
		var tm schema.Testimonial
		if err := schema.FromDocument(d, &tm); err != nil {
			logger.Warnf("testimonials: bad document, serving defaults: %v", err)
			metrics.FallbackServed.WithLabelValues("testimonials", "decode_error").Inc()
			c.JSON(http.StatusOK, DefaultTestimonials())
			return
		}
		out = append(out, tm)
	}
	if len(out) == 0 {
		logger.Debugf("testimonials: store empty, serving defaults")
		metrics.FallbackServed.WithLabelValues("testimonials", "empty").Inc()
		c.JSON(http.StatusOK, DefaultTestimonials())
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProjects lists stored projects with the same fallback contract as
// GetTestimonials.
func (h *PortfolioHandler) GetProjects(c *gin.Context) {
	docs, err := h.store.FetchAll(c.Request.Context(), schema.CollectionProject)
	if err != nil {
		logger.Warnf("projects: store read failed, serving defaults: %v", err)
		metrics.FallbackServed.WithLabelValues("projects", "store_error").Inc()
		c.JSON(http.StatusOK, DefaultProjects())
		return
	}

	out := make([]schema.Project, 0, len(docs))
	for _, d := range docs {
		var p schema.Project
		if err := schema.FromDocument(d, &p); err != nil {
			logger.Warnf("projects: bad document, serving defaults: %v", err)
			metrics.FallbackServed.WithLabelValues("projects", "decode_error").Inc()
			c.JSON(http.StatusOK, DefaultProjects())
			return
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		logger.Debugf("projects: store empty, serving defaults")
		metrics.FallbackServed.WithLabelValues("projects", "empty").Inc()
		c.JSON(http.StatusOK, DefaultProjects())
		return
	}
	c.JSON(http.StatusOK, out)
}
