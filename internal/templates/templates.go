// internal/templates/templates.go
package templates

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed *.html
var templateFS embed.FS

// Load parses the embedded dashboard templates and installs them on the router.
func Load(router *gin.Engine) error {
	tmpl, err := template.ParseFS(templateFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to parse embedded templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	return nil
}
