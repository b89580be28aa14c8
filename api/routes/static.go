package routes

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticUI serves the built client bundle in release mode. Unknown paths
// fall back to index.html so client-side routes survive a page reload.
// Registered as NoRoute, so the API group always wins.
func StaticUI(router *gin.Engine, staticDir string) {
	router.NoRoute(func(c *gin.Context) {
		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
