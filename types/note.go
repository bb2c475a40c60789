package types

import (
	"NoteFlow/models"
	"NoteFlow/pkg/response"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Order 列表排序方向
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// 字段长度上限
const (
	MaxTitleLength      = 50
	MaxContentLength    = 1000
	MaxSourceTextLength = 25000
)

// NoteListItem 列表视图 不含 source_text
type NoteListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteDetail 详情视图 owner 永不下发
type NoteDetail struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Source     string    `json:"source"`
	SourceText *string   `json:"source_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	SourceText *string `json:"source_text"`
}

// UpdateNoteRequest 更新笔记请求 只允许改标题和正文
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GenerateNoteRequest AI 生成请求
type GenerateNoteRequest struct {
	SourceText string `json:"source_text"`
}

// GenerateNoteResponse AI 生成结果
type GenerateNoteResponse struct {
	Content string `json:"content"`
}

// Validate 校验并归一化 返回全部失败字段
func (r *CreateNoteRequest) Validate() *response.ValidationError {
	fields := validateTitleContent(&r.Title, &r.Content)

	switch r.Source {
	case models.NoteSourceManual, models.NoteSourceAI:
	default:
		fields = append(fields, response.FieldError{
			Path:    "source",
			Message: "Source must be either 'ai' or 'manual'",
		})
	}

	if r.SourceText != nil {
		trimmed := strings.TrimSpace(*r.SourceText)
		r.SourceText = &trimmed
		if utf8.RuneCountInString(trimmed) > MaxSourceTextLength {
			fields = append(fields, response.FieldError{
				Path:    "source_text",
				Message: fmt.Sprintf("Source text cannot exceed %d characters", MaxSourceTextLength),
			})
		}
	}

	// ai 模式必须带上生成时用的原文
	if r.Source == models.NoteSourceAI && (r.SourceText == nil || *r.SourceText == "") {
		fields = append(fields, response.FieldError{
			Path:    "source_text",
			Message: "Source text is required for AI-generated notes",
		})
	}

	if len(fields) > 0 {
		return response.NewValidationError(fields...)
	}
	return nil
}

func (r *UpdateNoteRequest) Validate() *response.ValidationError {
	fields := validateTitleContent(&r.Title, &r.Content)
	if len(fields) > 0 {
		return response.NewValidationError(fields...)
	}
	return nil
}

func (r *GenerateNoteRequest) Validate() *response.ValidationError {
	var fields []response.FieldError

	r.SourceText = strings.TrimSpace(r.SourceText)
	if r.SourceText == "" {
		fields = append(fields, response.FieldError{
			Path:    "source_text",
			Message: "Source text is required",
		})
	} else if utf8.RuneCountInString(r.SourceText) > MaxSourceTextLength {
		fields = append(fields, response.FieldError{
			Path:    "source_text",
			Message: fmt.Sprintf("Source text cannot exceed %d characters", MaxSourceTextLength),
		})
	}

	if len(fields) > 0 {
		return response.NewValidationError(fields...)
	}
	return nil
}

// ValidateNoteID 路径参数必须是合法 UUID
func ValidateNoteID(id string) *response.ValidationError {
	if _, err := uuid.Parse(id); err != nil {
		return response.NewValidationError(response.FieldError{
			Path:    "id",
			Message: "Invalid note ID format. Must be a valid UUID.",
		})
	}
	return nil
}

// ValidateOrder 排序参数 缺省为 desc
func ValidateOrder(order string) (string, *response.ValidationError) {
	if order == "" {
		return OrderDesc, nil
	}
	if order != OrderAsc && order != OrderDesc {
		return "", response.NewValidationError(response.FieldError{
			Path:    "order",
			Message: "Order must be either 'asc' or 'desc'",
		})
	}
	return order, nil
}

func validateTitleContent(title, content *string) []response.FieldError {
	var fields []response.FieldError

	*title = strings.TrimSpace(*title)
	if *title == "" {
		fields = append(fields, response.FieldError{
			Path:    "title",
			Message: "Title is required",
		})
	} else if utf8.RuneCountInString(*title) > MaxTitleLength {
		fields = append(fields, response.FieldError{
			Path:    "title",
			Message: fmt.Sprintf("Title cannot exceed %d characters", MaxTitleLength),
		})
	}

	*content = strings.TrimSpace(*content)
	if *content == "" {
		fields = append(fields, response.FieldError{
			Path:    "content",
			Message: "Note content is required",
		})
	} else if utf8.RuneCountInString(*content) > MaxContentLength {
		fields = append(fields, response.FieldError{
			Path:    "content",
			Message: fmt.Sprintf("Note content cannot exceed %d characters", MaxContentLength),
		})
	}

	return fields
}

// ConvertNoteToDetail 模型转详情 DTO
func ConvertNoteToDetail(note *models.Note) *NoteDetail {
	return &NoteDetail{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		Source:     note.Source,
		SourceText: note.SourceText,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}

// ConvertNoteToListItem 模型转列表 DTO
func ConvertNoteToListItem(note *models.Note) *NoteListItem {
	return &NoteListItem{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Source:    note.Source,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
