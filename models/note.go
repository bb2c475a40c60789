package models

import (
	"time"
)

// 笔记内容来源
const (
	NoteSourceManual = "manual"
	NoteSourceAI     = "ai"
)

type Note struct {
	ID         string    `gorm:"column:id;type:char(36);primary_key" json:"id"`
	UserID     string    `gorm:"column:user_id;type:char(36);not null;index:idx_userid_created" json:"-"`
	Title      string    `gorm:"column:title;type:varchar(50);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	Source     string    `gorm:"column:source;type:varchar(10);not null;default:'manual'" json:"source"`
	SourceText *string   `gorm:"column:source_text;type:text" json:"source_text"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_userid_created" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n Note) TableName() string {
	return "notes"
}
