package web

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the public pages, the dashboard and the health check.
func SetupRoutes(r *gin.Engine, handler *SiteHandler) {
	r.GET("/", handler.Home)
	r.GET("/careers", handler.Careers)
	r.GET("/mastheads/:id", handler.Masthead)
	r.GET("/privacy", handler.Static("privacy.html"))
	r.GET("/terms", handler.Static("terms.html"))

	r.GET(LoginPath, handler.AdminLogin)
	r.GET("/admin", handler.Admin)

	r.GET("/healthz", handler.Healthz)
}
