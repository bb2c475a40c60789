package handler

import (
	"NoteFlow/config"
	"NoteFlow/middleware"
	"NoteFlow/pkg/context"
	"NoteFlow/pkg/llm"
	"NoteFlow/pkg/response"
	"NoteFlow/service"
	"NoteFlow/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AI struct {
	GenerateService service.IGenerateService
	Config          *config.Config
}

func (a *AI) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/v1/ai", authorize)
	g.POST("/generate-note", context.Wrap(a.GenerateNote))
}

// GenerateNote 由原文生成笔记草稿
// 校验不通过时不会发起上游调用
func (a *AI) GenerateNote(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	var req types.GenerateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid request body")
	}
	if ve := req.Validate(); ve != nil {
		return ve
	}

	result, err := a.GenerateService.GenerateNote(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			return response.NewError(http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		case errors.Is(err, llm.ErrTimedOut):
			return response.NewError(http.StatusGatewayTimeout, "AI generation took too long to complete. Please try with a shorter text.")
		default:
			return err
		}
	}

	response.Success(c, result)
	return nil
}
