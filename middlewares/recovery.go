package middlewares

import (
	"marketplace/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns a handler panic into the usual 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.FullPath()).
			Msg("handler panicked")
		resp.Abort(c, resp.Err(resp.KindInternal, "internal server error"))
	})
}
