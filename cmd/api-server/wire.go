//go:build wireinject
// +build wireinject

package main

import (
	"NoteFlow/config"
	"NoteFlow/dao"
	"NoteFlow/handler"
	"NoteFlow/pkg/database"
	"NoteFlow/pkg/llm"
	"NoteFlow/pkg/server"
	"NoteFlow/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		config.ProvideAIConfig,
		llm.NewClient,
		server.NewGinEngine,
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.AI), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
