package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>flashdeck — Swagger</title>
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

// Minimal OpenAPI document describing the flashcards API.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "flashdeck", "version": "v0.1.0" },
  "paths": {
    "/api/decks": {
      "get": { "summary": "List decks with card counts", "responses": { "200": { "description": "array of decks, each with a count field" } } },
      "post": {
        "summary": "Create a deck",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"description":{"type":"string"}},"required":["name"]}}}},
        "responses": { "200": { "description": "created deck" }, "400": { "description": "name is required" } }
      }
    },
    "/api/decks/{id}": {
      "get": { "summary": "Get a deck with its cards", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deck merged with its cards" }, "404": { "description": "deck not found" } } }
    },
    "/api/decks/{id}/cards": {
      "post": {
        "summary": "Add a card to a deck",
        "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"front":{"type":"string"},"back":{"type":"string"}},"required":["front","back"]}}}},
        "responses": { "200": { "description": "created card" }, "400": { "description": "front and back are required" }, "404": { "description": "deck not found" } }
      }
    },
    "/api/cards/{id}": {
      "delete": { "summary": "Delete a card", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "{ok:true}" }, "404": { "description": "card not found" } } }
    },
    "/api/ping": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "{ok:true}" } } } }
  }
}`
