package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/rockridgeglobal/enquiry-relay/internal/enquiry"
	"github.com/rockridgeglobal/enquiry-relay/internal/health"
)

// SetupRoutes configures all the routes for the application
func (s *Server) SetupRoutes() {
	staticDir := s.config.StaticDir

	// Static assets (CSS, JS, images)
	s.router.Static("/assets", filepath.Join(staticDir, "assets"))

	// Landing pages
	s.router.GET("/", s.page(filepath.Join(staticDir, "index.html")))
	s.router.GET("/bachupally", s.page(filepath.Join(staticDir, "bachupally", "index.html")))
	s.router.GET("/bachupally/", s.page(filepath.Join(staticDir, "bachupally", "index.html")))
	s.router.GET("/manikonda", s.page(filepath.Join(staticDir, "manikonda", "index.html")))
	s.router.GET("/manikonda/", s.page(filepath.Join(staticDir, "manikonda", "index.html")))
	s.router.GET("/thank-you", s.page(filepath.Join(staticDir, "thank-you.html")))

	// Register health check handlers
	healthHandlers := health.NewHandlers(s.app)
	s.router.GET("/health", healthHandlers.HealthCheckHandler)
	s.router.GET("/health/", healthHandlers.HealthCheckHandlerWithSlash)

	// Register enquiry handlers
	enquiryHandlers := enquiry.NewHandlers(s.app)
	s.router.POST("/api/send-email", enquiryHandlers.SendEmailHandler)
	s.router.POST("/api/enquiry", enquiryHandlers.SubmitHandler)
	s.router.GET("/api/whatsapp-qr", enquiryHandlers.WhatsAppQRHandler)

	s.router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found")
	})
}

func (s *Server) page(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(path)
	}
}
