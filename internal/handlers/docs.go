package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/russross/blackfriday/v2"
)

// DocsHandler serves project markdown documentation as HTML
type DocsHandler struct{}

// NewDocsHandler creates a new docs handler
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// allowedDocs maps URL names to the markdown files they render. Only files
// in this map are served.
var allowedDocs = map[string]string{
	"README": "README.md",
}

// ServeMarkdownAsHTML handles GET /doc/:doc
func (h *DocsHandler) ServeMarkdownAsHTML(c *gin.Context) {
	docName := c.Param("doc")

	fileName, exists := allowedDocs[docName]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	content, err := os.ReadFile(filepath.Join(".", fileName))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags,
	})
	htmlContent := blackfriday.Run(content, blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, wrapWithTheme(string(htmlContent), docName))
}

// wrapWithTheme wraps rendered markdown in a minimal styled page
func wrapWithTheme(body, title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s - IR Analyzer</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; border-radius: 4px; }
code { background: #f6f8fa; padding: 0.1rem 0.3rem; border-radius: 3px; }
a { color: #0366d6; }
</style>
</head>
<body>
%s
</body>
</html>`, title, body)
}
