package context

import (
	"NoteFlow/pkg/log"
	"NoteFlow/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 校验错误 返回全部字段
			var ve *response.ValidationError
			if errors.As(err, &ve) {
				response.Fail(c, http.StatusBadRequest, ve.Fields)
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			// 其他错误只记日志 不向外暴露细节
			log.L.Error("unhandled request error",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", errors.New("user_id 不存在")
	}

	uid, ok := v.(string)
	if !ok {
		return "", errors.New("user_id 类型错误")
	}

	return uid, nil
}
