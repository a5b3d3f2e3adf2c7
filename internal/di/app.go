package di

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"gomarket/internal/chat/handler"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
	"gomarket/internal/common"
	"gomarket/internal/config"
	"gomarket/internal/dbmongo"
	"gomarket/internal/dbmysql"
	"gomarket/internal/media"
)

// App is everything chat-svc serves.
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Handler   *handler.ChatHandler
	WS        *handler.WSHandler
	Media     *media.HTTPServer
	Validator *common.TokenValidator
	// Relay is nil when Kafka is disabled.
	Relay *realtime.Relay
	Reads *service.ReadTracker
}

// Router serves websocket, media, metrics and health on one port.
func (a *App) Router() *mux.Router {
	r := mux.NewRouter()
	a.WS.Register(r)
	a.Media.Register(r)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", health).Methods(http.MethodGet)
	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func provideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			glog.Warningf("mongo disconnect: %v", err)
		}
	}
	return client, cleanup, nil
}

// providePublisher picks Kafka when brokers are configured, the local hub
// otherwise.
func providePublisher(cfg *config.Config, hub *realtime.Hub) (realtime.Publisher, func()) {
	if !cfg.Kafka.Enabled() {
		glog.Info("kafka disabled, publishing to the local hub")
		return hub, func() {}
	}
	p := realtime.NewKafkaPublisher(realtime.NewKafkaWriter(cfg))
	return p, func() {
		if err := p.Close(); err != nil {
			glog.Warningf("kafka writer close: %v", err)
		}
	}
}

func provideRelay(cfg *config.Config, hub *realtime.Hub) *realtime.Relay {
	if !cfg.Kafka.Enabled() {
		return nil
	}
	return realtime.NewRelay(realtime.NewKafkaReader(cfg, nodeID()), hub)
}

func nodeID() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return uuid.NewString()
}

func provideReadTracker(backend service.Backend, cfg *config.Config) (*service.ReadTracker, func()) {
	rt := service.NewReadTracker(backend, cfg)
	return rt, rt.Shutdown
}

// provideTokenValidator refuses to start without JWT_SECRET.
func provideTokenValidator(cfg *config.Config) (*common.TokenValidator, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET: %w", common.ErrEmptySecret)
	}
	return common.NewTokenValidator(cfg.Auth.JWTSecret), nil
}
