//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gomarket/internal/chat/handler"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/repository"
	"gomarket/internal/chat/service"
	"gomarket/internal/chat/upload"
	"gomarket/internal/config"
	"gomarket/internal/dbmongo"
	"gomarket/internal/media"
)

var storageSet = wire.NewSet(
	provideDB,
	provideMongo,
	dbmongo.NewMediaStorage,
	wire.Bind(new(upload.ObjectStorage), new(*dbmongo.MediaStorage)),
	wire.Bind(new(media.FileSource), new(*dbmongo.MediaStorage)),
	repository.NewChatRepository,
)

var realtimeSet = wire.NewSet(
	realtime.NewHub,
	wire.Bind(new(realtime.Source), new(*realtime.Hub)),
	realtime.NewListener,
	wire.Bind(new(handler.EventListener), new(*realtime.Listener)),
	providePublisher,
	provideRelay,
)

var serviceSet = wire.NewSet(
	service.NewBackend,
	upload.NewUploader,
	wire.Bind(new(service.Uploader), new(*upload.Uploader)),
	service.NewResolver,
	wire.Bind(new(handler.ConversationResolver), new(*service.Resolver)),
	service.NewSendPipeline,
	wire.Bind(new(handler.MessageSender), new(*service.SendPipeline)),
	provideReadTracker,
	wire.Bind(new(handler.ReadMarker), new(*service.ReadTracker)),
)

var transportSet = wire.NewSet(
	provideTokenValidator,
	handler.NewChatHandler,
	handler.NewWSHandler,
	media.NewHTTPServer,
)

// InitializeChatService wires chat-svc. wire generates the body.
func InitializeChatService() (*App, func(), error) {
	wire.Build(
		config.LoadConfig,
		storageSet,
		realtimeSet,
		serviceSet,
		transportSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
