package handler

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// uiCSP relaxes the default policy so the UI can load swagger-ui-dist
const uiCSP = "default-src 'self'; " +
	"script-src 'self' https://unpkg.com; " +
	"style-src 'self' 'unsafe-inline' https://unpkg.com; " +
	"img-src 'self' data: https://unpkg.com"

var (
	//go:embed openapi.yaml
	openapiYAML []byte

	//go:embed index.html
	indexHTML []byte

	//go:embed swagger-initializer.js
	initializerJS []byte
)

// Handler serves the OpenAPI document and an interactive UI for it
type Handler struct {
	jsonDoc []byte
	yamlDoc []byte
	logger  *observability.Logger
}

// New loads the embedded OpenAPI document and points its server entry
// at /api/{apiVersion}.
func New(apiVersion string, logger *observability.Logger) (Handler, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openapiYAML, &doc); err != nil {
		return Handler{}, fmt.Errorf("failed to parse openapi document: %w", err)
	}
	doc["servers"] = []any{
		map[string]any{"url": "/api/" + apiVersion},
	}

	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return Handler{}, fmt.Errorf("failed to encode openapi document as json: %w", err)
	}
	yamlDoc, err := yaml.Marshal(doc)
	if err != nil {
		return Handler{}, fmt.Errorf("failed to encode openapi document as yaml: %w", err)
	}

	paths, _ := doc["paths"].(map[string]any)
	logger.Debug(observability.WithFields(context.Background(),
		observability.Field{Key: "paths", Value: len(paths)},
	), "loaded openapi document")

	return Handler{
		jsonDoc: jsonDoc,
		yamlDoc: yamlDoc,
		logger:  logger,
	}, nil
}

func (h *Handler) HandleJSON(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.jsonDoc)
}

func (h *Handler) HandleYAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", h.yamlDoc)
}

// HandleUI serves the Swagger UI page
func (h *Handler) HandleUI(c *gin.Context) {
	c.Header("Content-Security-Policy", uiCSP)
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (h *Handler) HandleInitializer(c *gin.Context) {
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", initializerJS)
}
