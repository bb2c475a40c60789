package handler

import (
	"NoteFlow/config"
	"NoteFlow/middleware"
	"NoteFlow/pkg/context"
	"NoteFlow/pkg/response"
	"NoteFlow/service"
	"NoteFlow/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
	Config      *config.Config
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))
	g := r.Group("/v1/notes", authorize)
	g.GET("", context.Wrap(n.ListNotes))
	g.POST("", context.Wrap(n.CreateNote))
	g.GET("/:id", context.Wrap(n.GetNote))
	g.PATCH("/:id", context.Wrap(n.UpdateNote))
	g.DELETE("/:id", context.Wrap(n.DeleteNote))
}

// ListNotes 笔记列表 order=asc|desc 缺省 desc
func (n *Note) ListNotes(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	order, ve := types.ValidateOrder(c.Query("order"))
	if ve != nil {
		return ve
	}

	notes, err := n.NoteService.ListNotes(c.Request.Context(), userID, order)
	if err != nil {
		return err
	}

	response.Success(c, notes)
	return nil
}

// GetNote 笔记详情
func (n *Note) GetNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	noteID := c.Param("id")
	if ve := types.ValidateNoteID(noteID); ve != nil {
		return ve
	}

	note, err := n.NoteService.GetNote(c.Request.Context(), userID, noteID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return response.NewError(http.StatusNotFound, "Note not found")
		}
		if errors.Is(err, service.ErrNoteForbidden) {
			return response.NewError(http.StatusForbidden, "You don't have permission to access this note")
		}
		return err
	}

	response.Success(c, note)
	return nil
}

// CreateNote 创建笔记
func (n *Note) CreateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid request body")
	}
	if ve := req.Validate(); ve != nil {
		return ve
	}

	note, err := n.NoteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, note)
	return nil
}

// UpdateNote 更新笔记 只改标题和正文
func (n *Note) UpdateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	noteID := c.Param("id")
	if ve := types.ValidateNoteID(noteID); ve != nil {
		return ve
	}

	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid request body")
	}
	if ve := req.Validate(); ve != nil {
		return ve
	}

	note, err := n.NoteService.UpdateNote(c.Request.Context(), userID, noteID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return response.NewError(http.StatusNotFound, "Note not found")
		}
		if errors.Is(err, service.ErrNoteForbidden) {
			return response.NewError(http.StatusForbidden, "You don't have permission to update this note")
		}
		return err
	}

	response.Success(c, note)
	return nil
}

// DeleteNote 删除笔记 成功返回 204
func (n *Note) DeleteNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	noteID := c.Param("id")
	if ve := types.ValidateNoteID(noteID); ve != nil {
		return ve
	}

	if err := n.NoteService.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return response.NewError(http.StatusNotFound, "Note not found")
		}
		if errors.Is(err, service.ErrNoteForbidden) {
			return response.NewError(http.StatusForbidden, "You don't have permission to delete this note")
		}
		return err
	}

	response.NoContent(c)
	return nil
}
