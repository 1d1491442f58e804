package routes

import (
	"log"
	"net/http"
	"strings"

	"techblog/web"

	"github.com/gin-gonic/gin"
)

var apiEndpoints = []string{
	"GET /health",
	"GET /api/articles",
	"GET /api/articles/:id",
	"POST /api/articles",
	"PUT /api/articles/:id",
	"DELETE /api/articles/:id",
	"POST /api/auth/login",
}

// RegisterWebRoutes serves the embedded single-page client and installs
// the catch-all: unknown /api paths get a structured 404 listing the
// available endpoints, everything else falls back to the SPA index.
func RegisterWebRoutes(router *gin.Engine) {
	staticFS, err := web.Static()
	if err != nil {
		log.Fatalf("Failed to load embedded web client: %v", err)
	}

	httpFS := http.FS(staticFS)
	fileServer := http.FileServer(httpFS)

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path

		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":             "error",
				"message":            "Endpoint not found",
				"availableEndpoints": apiEndpoints,
			})
			return
		}

		if path != "/" {
			if f, err := httpFS.Open(path); err == nil {
				f.Close()
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
		}

		// SPA fallback
		c.FileFromFS("/", httpFS)
	})
}
