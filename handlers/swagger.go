package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers Swagger/OpenAPI endpoints for the dictionary API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>dictionary API · Swagger</title>
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

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "dictionary", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Draft": {
        "type": "object",
        "required": ["word", "partOfSpeech", "definitions"],
        "properties": {
          "word": { "type": "string" },
          "phonetic": { "type": "string" },
          "partOfSpeech": { "type": "string" },
          "definitions": { "type": "array", "minItems": 1, "items": { "type": "string" } },
          "examples": { "type": "array", "items": { "type": "string" } },
          "synonyms": { "type": "array", "items": { "type": "string" } },
          "antonyms": { "type": "array", "items": { "type": "string" } }
        }
      },
      "WordEntry": {
        "allOf": [
          { "$ref": "#/components/schemas/Draft" },
          { "type": "object", "properties": { "id": { "type": "string" }, "createdAt": { "type": "string", "format": "date-time" }, "updatedAt": { "type": "string", "format": "date-time" } } }
        ]
      },
      "Error": {
        "type": "object",
        "properties": { "error": { "type": "string" }, "fields": { "type": "array", "items": { "type": "string" } } }
      }
    }
  },
  "paths": {
    "/api/words/search": {
      "get": {
        "summary": "Case-insensitive substring search over word and definitions (max 50, ordered by word)",
        "parameters": [{ "name": "query", "in": "query", "schema": { "type": "string" } }],
        "responses": { "200": { "description": "matching entries; empty when the trimmed query is shorter than 2 characters" } }
      }
    },
    "/api/words": {
      "get": { "summary": "List every entry ordered by word", "responses": { "200": { "description": "all entries" } } },
      "post": {
        "summary": "Add a word",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Draft" } } } },
        "responses": { "201": { "description": "created entry" }, "400": { "description": "validation failed" } }
      }
    },
    "/api/words/{id}": {
      "parameters": [{ "name": "id", "in": "path", "required": true, "schema": { "type": "string" } }],
      "get": { "summary": "Fetch one entry", "responses": { "200": { "description": "entry" }, "400": { "description": "invalid word id" }, "404": { "description": "word not found" } } },
      "put": {
        "summary": "Replace the editable fields of an entry",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Draft" } } } },
        "responses": { "200": { "description": "updated entry" }, "400": { "description": "validation failed or invalid word id" }, "404": { "description": "word not found" } }
      },
      "delete": { "summary": "Remove an entry", "responses": { "200": { "description": "{\"deleted\": true|false}" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
