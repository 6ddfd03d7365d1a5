package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the
// portfolio service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>devfolio — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public and admin endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "devfolio", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": { "summary": "Admin login with static credentials", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "session cookie set" }, "401": { "description": "invalid credentials" } } }
    },
    "/api/auth/logout": {
      "get": { "summary": "Clear session and redirect to login page", "responses": { "302": { "description": "redirect" } } },
      "post": { "summary": "Clear session", "responses": { "200": { "description": "logged out" } } }
    },
    "/api/auth/me": {
      "get": { "summary": "Decode session payload", "responses": { "200": { "description": "session user" }, "401": { "description": "no or corrupt session" } } }
    },
    "/api/content/get": {
      "get": { "summary": "Fetch the content document (defaults when unset)", "responses": { "200": { "description": "content document" } } }
    },
    "/api/content/update": {
      "post": { "summary": "Merge-update one content section (admin)", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"section":{"type":"string"},"data":{"type":"object"}}}}}}, "responses": { "200": { "description": "merged section" }, "401": { "description": "no session" } } }
    },
    "/api/contact/submit": {
      "post": { "summary": "Submit a contact message", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"fullname":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"message":{"type":"string"}}}}}}, "responses": { "200": { "description": "message stored" }, "400": { "description": "missing required field" } } }
    },
    "/api/contact/list": {
      "get": { "summary": "List contact submissions (admin)", "responses": { "200": { "description": "submissions newest-first" }, "401": { "description": "no session" } } }
    },
    "/api/contact/delete": {
      "delete": { "summary": "Delete one submission by id (admin)", "parameters": [ { "name": "id", "in": "query", "required": true, "schema": { "type": "string" } } ], "responses": { "200": { "description": "deleted" }, "404": { "description": "unknown id" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
