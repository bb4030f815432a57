package middleware

import (
	"errors"
	"net/http"

	"pharma-search-srv/pkg/discord"
	"pharma-search-srv/pkg/log"
	"pharma-search-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 envelope and reports the stack to Discord.
// http.ErrAbortHandler is re-raised so net/http can drop the connection as intended.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			ctx := c.Request.Context()
			logger.Errorf(ctx, "middleware.Recovery: panic on %s %s: %v", c.Request.Method, c.FullPath(), rec)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, rec, discordClient)
			c.Abort()
		}()
		c.Next()
	}
}
