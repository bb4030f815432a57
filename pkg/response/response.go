package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"pharma-search-srv/pkg/discord"
	pkgErrors "pharma-search-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Error writes err as a response. HTTPError values keep their status, binding errors become 400
// and anything else is a 500 reported to discord when available.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]pkgErrors.ValidationError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, pkgErrors.ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on %s", fe.Tag()),
			})
		}
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    fields,
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// PanicError writes a 500 for a recovered panic and reports the stack.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic: %v\n%s", recovered, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	_ = d.ReportBug(ctx, msg)
}
