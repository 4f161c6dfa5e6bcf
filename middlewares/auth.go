package middlewares

import (
	"strings"

	"marketplace/pkg/resp"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthFailedMessage is all a caller learns about a rejected token.
const AuthFailedMessage = "authentication failed"

// IdentityVerifier decodes a bearer token into the caller's identity.
type IdentityVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// AuthMiddleware checks the bearer token and, when roles are given, requires
// the caller to hold one of them.
func AuthMiddleware(verifier IdentityVerifier, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Abort(c, resp.Err(resp.KindUnauthorized, AuthFailedMessage))
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("token rejected")
			resp.Abort(c, resp.Err(resp.KindUnauthorized, AuthFailedMessage))
			return
		}

		c.Set(utils.CtxUserID, claims.UserID)
		c.Set(utils.CtxRole, claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Abort(c, resp.Err(resp.KindForbidden, "forbidden"))
				return
			}
		}

		c.Next()
	}
}
