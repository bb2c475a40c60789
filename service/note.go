package service

import (
	"NoteFlow/dao"
	"NoteFlow/models"
	"NoteFlow/types"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	ListNotes(ctx context.Context, userID string, order string) ([]*types.NoteListItem, error)
	GetNote(ctx context.Context, userID string, noteID string) (*types.NoteDetail, error)
	CreateNote(ctx context.Context, userID string, req *types.CreateNoteRequest) (*types.NoteDetail, error)
	UpdateNote(ctx context.Context, userID string, noteID string, req *types.UpdateNoteRequest) (*types.NoteDetail, error)
	DeleteNote(ctx context.Context, userID string, noteID string) error
}

type NoteService struct {
	NoteDAO *dao.NoteDAO
}

// ListNotes 获取用户的笔记列表 空结果返回空切片
func (s *NoteService) ListNotes(ctx context.Context, userID string, order string) ([]*types.NoteListItem, error) {
	notes, err := s.NoteDAO.FindByUserID(ctx, userID, order)
	if err != nil {
		return nil, err
	}

	items := make([]*types.NoteListItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, types.ConvertNoteToListItem(note))
	}
	return items, nil
}

// GetNote 获取笔记详情 含 source_text
func (s *NoteService) GetNote(ctx context.Context, userID string, noteID string) (*types.NoteDetail, error) {
	note, err := s.findOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	return types.ConvertNoteToDetail(note), nil
}

// CreateNote 创建笔记 id 与时间戳由服务端生成
func (s *NoteService) CreateNote(ctx context.Context, userID string, req *types.CreateNoteRequest) (*types.NoteDetail, error) {
	now := time.Now()
	note := &models.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Source:    req.Source,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// 手动笔记不保留原文
	if req.Source == models.NoteSourceAI {
		note.SourceText = req.SourceText
	}

	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, err
	}
	return types.ConvertNoteToDetail(note), nil
}

// UpdateNote 更新标题与正文 source 与 source_text 不可变
func (s *NoteService) UpdateNote(ctx context.Context, userID string, noteID string, req *types.UpdateNoteRequest) (*types.NoteDetail, error) {
	if _, err := s.findOwned(ctx, userID, noteID); err != nil {
		return nil, err
	}

	if err := s.NoteDAO.UpdateContent(ctx, noteID, req.Title, req.Content, time.Now()); err != nil {
		return nil, err
	}

	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	return types.ConvertNoteToDetail(note), nil
}

// DeleteNote 物理删除
func (s *NoteService) DeleteNote(ctx context.Context, userID string, noteID string) error {
	if _, err := s.findOwned(ctx, userID, noteID); err != nil {
		return err
	}
	return s.NoteDAO.Delete(ctx, noteID)
}

// findOwned 先按 id 查 再比对 owner
func (s *NoteService) findOwned(ctx context.Context, userID string, noteID string) (*models.Note, error) {
	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	if note.UserID != userID {
		return nil, ErrNoteForbidden
	}
	return note, nil
}
