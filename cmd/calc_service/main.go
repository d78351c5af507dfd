package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"google.golang.org/grpc"

	"webcalc/internal/api"
	"webcalc/internal/config"
	internalgrpc "webcalc/internal/grpc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           api.SetupRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Сервер запущен на http://localhost:%s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка HTTP сервера: %v", err)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled() {
		grpcServer = internalgrpc.NewServer()
		go func() {
			if err := internalgrpc.StartServer(cfg.GRPCAddr(), grpcServer); err != nil {
				log.Fatalf("Ошибка gRPC сервера: %v", err)
			}
		}()
	} else {
		log.Printf("gRPC отключен")
	}

	operations := map[string]gfshutdown.Operation{
		"http": func(ctx context.Context) error {
			return httpServer.Shutdown(ctx)
		},
	}
	if grpcServer != nil {
		operations["grpc"] = func(ctx context.Context) error {
			stopped := make(chan struct{})
			go func() {
				grpcServer.GracefulStop()
				close(stopped)
			}()
			select {
			case <-stopped:
				return nil
			case <-ctx.Done():
				grpcServer.Stop()
				return ctx.Err()
			}
		}
	}

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.ShutdownTimeout, operations)

	exitCode := <-wait
	log.Printf("Сервис остановлен с кодом %d", exitCode)
	os.Exit(exitCode)
}
