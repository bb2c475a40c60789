package service

import (
	"NoteFlow/dao"
	"NoteFlow/models"
	"NoteFlow/types"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	ownerID  = "11111111-1111-4111-8111-111111111111"
	otherID  = "22222222-2222-4222-8222-222222222222"
	missing  = "33333333-3333-4333-8333-333333333333"
	srcText  = "original source material"
	manualTy = models.NoteSourceManual
)

func newNoteService(t *testing.T) *NoteService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "notes.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Note{}))
	return &NoteService{NoteDAO: dao.NewNoteDAO(db)}
}

func TestCreateNote(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
		Title:   "Test Note",
		Content: "Test Content",
		Source:  manualTy,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "manual", note.Source)
	assert.Nil(t, note.SourceText)
	assert.True(t, note.CreatedAt.Equal(note.UpdatedAt))

	// id 每次都是新的
	second, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
		Title:   "Another",
		Content: "Content",
		Source:  manualTy,
	})
	require.NoError(t, err)
	assert.NotEqual(t, note.ID, second.ID)
}

func TestCreateNoteManualDropsSourceText(t *testing.T) {
	s := newNoteService(t)
	text := srcText

	note, err := s.CreateNote(context.Background(), ownerID, &types.CreateNoteRequest{
		Title:      "Test Note",
		Content:    "Test Content",
		Source:     manualTy,
		SourceText: &text,
	})
	require.NoError(t, err)
	assert.Nil(t, note.SourceText)
}

func TestCreateNoteAIKeepsSourceText(t *testing.T) {
	s := newNoteService(t)
	text := srcText

	note, err := s.CreateNote(context.Background(), ownerID, &types.CreateNoteRequest{
		Title:      "Summary",
		Content:    "Generated content",
		Source:     models.NoteSourceAI,
		SourceText: &text,
	})
	require.NoError(t, err)
	require.NotNil(t, note.SourceText)
	assert.Equal(t, srcText, *note.SourceText)

	got, err := s.GetNote(context.Background(), ownerID, note.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SourceText)
	assert.Equal(t, srcText, *got.SourceText)
}

func TestUpdateNote(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	created, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
		Title:   "Old title",
		Content: "Old content",
		Source:  manualTy,
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := s.UpdateNote(ctx, ownerID, created.ID, &types.UpdateNoteRequest{
		Title:   "New title",
		Content: "New content",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	// 读回已更新内容
	got, err := s.GetNote(ctx, ownerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "New content", got.Content)
}

func TestOwnershipChecks(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
		Title:   "Private",
		Content: "Content",
		Source:  manualTy,
	})
	require.NoError(t, err)

	_, err = s.GetNote(ctx, otherID, note.ID)
	assert.ErrorIs(t, err, ErrNoteForbidden)

	_, err = s.UpdateNote(ctx, otherID, note.ID, &types.UpdateNoteRequest{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNoteForbidden)

	err = s.DeleteNote(ctx, otherID, note.ID)
	assert.ErrorIs(t, err, ErrNoteForbidden)

	// 别人的删除尝试不能生效
	got, err := s.GetNote(ctx, ownerID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Title)

	_, err = s.GetNote(ctx, ownerID, missing)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
		Title:   "Doomed",
		Content: "Content",
		Source:  manualTy,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteNote(ctx, ownerID, note.ID))

	_, err = s.GetNote(ctx, ownerID, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestListNotesOrdering(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
			Title:   title,
			Content: "Content",
			Source:  manualTy,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	asc, err := s.ListNotes(ctx, ownerID, types.OrderAsc)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	for i := 1; i < len(asc); i++ {
		assert.False(t, asc[i].CreatedAt.Before(asc[i-1].CreatedAt))
	}
	assert.Equal(t, "first", asc[0].Title)

	desc, err := s.ListNotes(ctx, ownerID, types.OrderDesc)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	for i := 1; i < len(desc); i++ {
		assert.False(t, desc[i].CreatedAt.After(desc[i-1].CreatedAt))
	}
	assert.Equal(t, "third", desc[0].Title)
}

func TestListNotesScopedToOwner(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	_, err := s.CreateNote(ctx, ownerID, &types.CreateNoteRequest{
		Title:   "Mine",
		Content: "Content",
		Source:  manualTy,
	})
	require.NoError(t, err)

	mine, err := s.ListNotes(ctx, ownerID, types.OrderDesc)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// 其他用户看到空列表 而不是报错
	theirs, err := s.ListNotes(ctx, otherID, types.OrderDesc)
	require.NoError(t, err)
	assert.NotNil(t, theirs)
	assert.Len(t, theirs, 0)
}
