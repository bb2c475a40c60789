package dao

import (
	"NoteFlow/models"
	"NoteFlow/types"
	"context"
	"time"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// Create 创建笔记
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Create(note).Error
}

// FindByUserID 查询用户全部笔记 按创建时间排序
func (d *NoteDAO) FindByUserID(ctx context.Context, userID string, order string) ([]*models.Note, error) {
	sort := "created_at DESC"
	if order == types.OrderAsc {
		sort = "created_at ASC"
	}

	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(sort).
		Find(&notes).Error
	return notes, err
}

// FindByID 只按 id 查 owner 校验放在 service 层
// 这样 "不存在" 和 "不是你的" 才能区分开
func (d *NoteDAO) FindByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).
		Where("id = ?", id).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateContent 只更新标题与正文 并刷新 updated_at
func (d *NoteDAO) UpdateContent(ctx context.Context, id string, title, content string, updatedAt time.Time) error {
	return d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": updatedAt,
		}).Error
}

// Delete 物理删除
func (d *NoteDAO) Delete(ctx context.Context, id string) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Note{}).Error
}
