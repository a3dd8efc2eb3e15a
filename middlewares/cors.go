package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
)

// CORSMiddleware builds the CORS policy from CORS_ALLOWED_ORIGINS. An
// empty list falls back to "*" so bare test setups keep working.
func CORSMiddleware(appCfg *configs.Config) gin.HandlerFunc {
	origins := appCfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg := cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(cfg)
}
