package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/golang/glog"

	"gomarket/internal/config"
	"gomarket/internal/dbmongo"
	"gomarket/internal/media"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		glog.Exitf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Close(context.Background())

	mediaServer := media.NewHTTPServer(dbmongo.NewMediaStorage(mongoClient))

	addr := ":" + cfg.Server.MediaServicePort
	glog.Infof("🚀 Media HTTP Server starting on %s", addr)
	glog.Infof("📂 Serving files at: %s/{fileId}", cfg.Server.MediaBaseURL)

	if err := http.ListenAndServe(addr, mediaServer); err != nil {
		glog.Exitf("Failed to start server: %v", err)
	}
}
