package response

import (
	"NoteFlow/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError 校验错误 携带全部失败字段
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Message
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status: httpStatus,
		Error:  msg,
	})
}

// ErrorMiddleware 兜底 panic 只记日志 对外统一 500
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
				)
				c.JSON(http.StatusInternalServerError, Response{
					Status: http.StatusInternalServerError,
					Error:  "Internal Server Error",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
