package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(GenerateService), "*"),
	wire.Bind(new(IGenerateService), new(*GenerateService)),
)
