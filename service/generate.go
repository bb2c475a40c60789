package service

import (
	"NoteFlow/pkg/llm"
	"NoteFlow/types"
	"context"
)

var _ IGenerateService = (*GenerateService)(nil)

type IGenerateService interface {
	GenerateNote(ctx context.Context, req *types.GenerateNoteRequest) (*types.GenerateNoteResponse, error)
}

type GenerateService struct {
	LLM *llm.Client
}

// GenerateNote 调用上游生成笔记草稿 错误原样上抛
func (s *GenerateService) GenerateNote(ctx context.Context, req *types.GenerateNoteRequest) (*types.GenerateNoteResponse, error) {
	content, err := s.LLM.GenerateNoteContent(ctx, req.SourceText)
	if err != nil {
		return nil, err
	}
	return &types.GenerateNoteResponse{Content: content}, nil
}
