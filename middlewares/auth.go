package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

// AuthMiddleware validates the bearer token, resolves it into an Actor
// once, and (if roles are given) enforces them.
func AuthMiddleware(cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, resp.Envelope{Status: "error", Message: "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, resp.Envelope{Status: "error", Message: "invalid token"})
			c.Abort()
			return
		}

		actor := utils.Actor{
			UserID:     claims.UserID,
			Role:       claims.Role,
			BranchID:   claims.BranchID,
			BranchName: claims.BranchName,
		}
		utils.SetActor(c, actor)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if actor.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, resp.Envelope{Status: "error", Message: "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
