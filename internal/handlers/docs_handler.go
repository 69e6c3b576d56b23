package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves the interactive API reference. The Scalar page and the
// OpenAPI document are generated into the docs directory at build time; when
// they are absent the endpoints degrade to an empty page rather than failing
// startup.
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	oas3Path   string
}

// NewDocsHandler loads the generated documentation assets from ./docs
func NewDocsHandler() *DocsHandler {
	return NewDocsHandlerWithDir("docs")
}

// NewDocsHandlerWithDir loads documentation assets from the given directory
func NewDocsHandlerWithDir(dir string) *DocsHandler {
	scalarHTML, err := os.ReadFile(filepath.Join(dir, "scalar.html"))
	if err != nil {
		scalarHTML = []byte{}
	}

	return &DocsHandler{
		scalarHTML: scalarHTML,
		scalarETag: generateETag(scalarHTML),
		oas3Path:   filepath.Join(dir, "swagger.json"),
	}
}

// ServeScalarUI serves the Scalar documentation page
//
// Method: GET /docs
// Authentication: None
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI document that the Scalar page loads
//
// Method: GET /docs/swagger.json
// Authentication: None
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.File(h.oas3Path)
}

func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
