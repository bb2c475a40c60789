package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构 status + data/error
type Response struct {
	Status int `json:"status"`
	Data   any `json:"data,omitempty"`
	Error  any `json:"error,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Status: http.StatusCreated,
		Data:   data,
	})
}

// NoContent 删除成功 无响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, status int, err any) {
	c.JSON(status, Response{
		Status: status,
		Error:  err,
	})
}
