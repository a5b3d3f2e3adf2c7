package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/golang/glog"
	"google.golang.org/grpc"

	pb "gomarket/api/v1/chat"
	"gomarket/internal/common"
	"gomarket/internal/dbmysql"
	"gomarket/internal/di"
)

// attachments travel inline in SendMessage
const maxRecvMsgSize = 10 << 20

func main() {
	flag.Parse()
	defer glog.Flush()
	glog.Info("Starting Chat Service...")

	app, cleanup, err := di.InitializeChatService()
	if err != nil {
		glog.Exitf("Failed to initialize chat service: %v", err)
	}
	defer cleanup()

	if err := dbmysql.AutoMigrate(app.DB); err != nil {
		glog.Exitf("Failed to migrate database: %v", err)
	}
	glog.Info("✅ Database migration completed")

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(maxRecvMsgSize),
		grpc.ChainUnaryInterceptor(loggingUnaryInterceptor, common.AuthInterceptor(app.Validator)),
		grpc.ChainStreamInterceptor(loggingStreamInterceptor, common.StreamAuthInterceptor(app.Validator)),
	)
	pb.RegisterChatServiceServer(grpcServer, app.Handler)

	lis, err := net.Listen("tcp", ":"+app.Config.Server.ChatServicePort)
	if err != nil {
		glog.Exitf("Failed to listen on port %s: %v", app.Config.Server.ChatServicePort, err)
	}

	httpServer := &http.Server{
		Addr:        ":" + app.Config.Server.HTTPPort,
		Handler:     app.Router(),
		ReadTimeout: time.Duration(app.Config.Server.ReadTimeout) * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	if app.Relay != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.Relay.Run(ctx)
		}()
	}

	go func() {
		glog.Infof("Chat Service running on port %s", app.Config.Server.ChatServicePort)
		if err := grpcServer.Serve(lis); err != nil {
			glog.Exitf("Failed to serve: %v", err)
		}
	}()
	go func() {
		glog.Infof("HTTP (ws, media, metrics) on port %s", app.Config.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Exitf("Failed to serve http: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	glog.Info("Shutting down Chat Service...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		glog.Warningf("http shutdown: %v", err)
	}
	app.Handler.Shutdown()
	stopGRPC(shutdownCtx, grpcServer)
	cancel()
	wg.Wait()
	glog.Info("Chat Service stopped")
}

// stopGRPC drains in-flight calls until ctx ends, then cuts them off.
func stopGRPC(ctx context.Context, s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		glog.Warning("grpc graceful stop timed out, forcing")
		s.Stop()
		<-done
	}
}

func loggingUnaryInterceptor(ctx context.Context, req interface{},
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	glog.V(1).Infof("→ %s", info.FullMethod)

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		glog.Warningf("✗ %s failed (%v): %v", info.FullMethod, duration, err)
	} else {
		glog.V(1).Infof("✓ %s completed (%v)", info.FullMethod, duration)
	}

	return resp, err
}

func loggingStreamInterceptor(srv interface{}, stream grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	glog.V(1).Infof("⟷ %s stream started", info.FullMethod)
	err := handler(srv, stream)

	if err != nil {
		glog.Warningf("✗ %s stream ended with error: %v", info.FullMethod, err)
	} else {
		glog.V(1).Infof("✓ %s stream completed", info.FullMethod)
	}
	return err
}
