package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CORS allows every origin when origins is empty. Otherwise only the listed
// origins are allowed, with credentials.
func CORS(origins []string, logger logrus.FieldLogger) gin.HandlerFunc {
	allowedOrigins := map[string]bool{}
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(allowedOrigins) == 0 {
		logger.Info("CORS: no ALLOWED_ORIGINS set, allowing all origins")
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}

	logger.Infof("CORS: allowed origins: %v", allowedOrigins)
	cfg.AllowCredentials = true
	cfg.AllowOriginFunc = func(origin string) bool {
		allowed := allowedOrigins[origin]
		logger.Debugf("CORS check, origin: %q, allowed: %v", origin, allowed)
		return allowed
	}
	return cors.New(cfg)
}
