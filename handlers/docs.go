package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocs registers the API documentation endpoints.
//   - GET /docs         -> Swagger UI loading the OpenAPI document
//   - GET /openapi.json -> machine-readable OpenAPI document
func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, docsHTML)
	})

	r.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(openapiJSON))
	})
}

const docsHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Portfolio API — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Static OpenAPI document for the public routes.
const openapiJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Portfolio API", "version": "1.0" },
  "paths": {
    "/": {
      "get": { "summary": "Liveness check", "responses": { "200": { "description": "backend is running" } } }
    },
    "/test": {
      "get": { "summary": "Store connectivity diagnostics", "responses": { "200": { "description": "human-readable connection report" } } }
    },
    "/ai/suggest": {
      "post": {
        "summary": "Draft a reply subject and body from a partial contact form",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string","format":"email"},"subject":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "200": { "description": "drafted subject and message" }, "422": { "description": "invalid payload" } }
      }
    },
    "/contact": {
      "post": {
        "summary": "Store a contact-form message",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","body"],"properties":{"name":{"type":"string"},"email":{"type":"string","format":"email"},"subject":{"type":"string"},"body":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored, returns id" }, "422": { "description": "invalid payload" }, "500": { "description": "store write failed" } }
      }
    },
    "/interactions": {
      "post": {
        "summary": "Append a visitor interaction event",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["session_id","event"],"properties":{"session_id":{"type":"string"},"event":{"type":"string"},"value":{"type":"string"},"path":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored, returns id" }, "422": { "description": "invalid payload" }, "500": { "description": "store write failed" } }
      }
    },
    "/testimonials": {
      "get": { "summary": "List testimonials (built-in fallback when store is empty or down)", "responses": { "200": { "description": "testimonial list" } } }
    },
    "/projects": {
      "get": { "summary": "List portfolio projects (built-in fallback when store is empty or down)", "responses": { "200": { "description": "project list" } } }
    },
    "/schema": {
      "get": { "summary": "Record-kind registry for admin tooling", "responses": { "200": { "description": "kind name to shape description" } } }
    }
  }
}`
