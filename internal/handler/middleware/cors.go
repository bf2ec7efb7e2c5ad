package middleware

import (
	"log/slog"
	"slices"

	"hotel-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedHeaders are set by this package and must stay readable by browser
// clients whatever CORS_EXPOSE_HEADERS says.
var exposedHeaders = []string{headerRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}

// NewCORSMiddleware treats a "*" origin as allow-all, which browsers only
// accept without credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, exposedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"credentials", corsCfg.AllowCredentials,
		"expose_headers", corsCfg.ExposeHeaders,
	)
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
