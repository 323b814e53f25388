package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rockridgeglobal/enquiry-relay/internal/app"
	"github.com/rockridgeglobal/enquiry-relay/internal/mailer"
)

// Handlers contains HTTP handlers for health checks
type Handlers struct {
	app *app.App
}

// NewHandlers creates a new health handlers instance
func NewHandlers(app *app.App) *Handlers {
	return &Handlers{app: app}
}

// HealthCheckHandler reports service status. Always returns 200 OK; the
// mail_configured flag tells operators whether SMTP credentials are present
// without failing the probe.
func (h *Handlers) HealthCheckHandler(c *gin.Context) {
	uptime := time.Since(h.app.StartTime).String()

	sender := mailer.New(h.app.Config.MailerConfig(), h.app.Logger)

	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"uptime":            uptime,
		"dispatch_strategy": h.app.Config.DispatchStrategy,
		"mail_configured":   sender.IsConfigured(),
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}

// HealthCheckHandlerWithSlash handles the health check endpoint with trailing slash
func (h *Handlers) HealthCheckHandlerWithSlash(c *gin.Context) {
	h.HealthCheckHandler(c)
}
