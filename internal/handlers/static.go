package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Static serves the client bundle. Unmatched paths fall through to
// index.html so client-side routing keeps working after a reload.
func Static(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, failResponse("not found"))
			return
		}

		reqPath := filepath.Clean(c.Request.URL.Path)
		if strings.Contains(reqPath, "..") {
			c.JSON(http.StatusNotFound, failResponse("not found"))
			return
		}

		full := filepath.Join(dir, reqPath)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		c.File(filepath.Join(dir, "index.html"))
	}
}
