package app

import (
	"log"
	"time"

	"github.com/rockridgeglobal/enquiry-relay/internal/config"
)

// App holds shared application state and resources. The service keeps no
// cross-request mutable state; everything here is fixed at startup.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	StartTime time.Time // Track startup time for health checks
}

// NewApp creates a new App instance with initialized resources
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		StartTime: time.Now(),
	}
}
