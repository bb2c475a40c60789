package server

import (
	"NoteFlow/handler"
)

type Handlers struct {
	Note *handler.Note
	AI   *handler.AI
}
