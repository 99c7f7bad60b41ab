package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielpatrickdp/therapy-assistant/internal/codec"
	"github.com/danielpatrickdp/therapy-assistant/internal/config"
	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"github.com/danielpatrickdp/therapy-assistant/internal/logging"
	"google.golang.org/grpc"
)

// #region main
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.GeminiAPIKey == "" {
		return config.ErrMissingAPIKey
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	defer logging.Close()
	log := logging.Component("bridge")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.BridgeListen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.BridgeListen, err)
	}

	srv := grpc.NewServer()
	codec.RegisterCompletionServiceServer(srv, codec.NewCompletionServer(gemini, log))

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		srv.GracefulStop()
	}()

	log.WithField("addr", lis.Addr().String()).WithField("model", gemini.Model()).Info("completion bridge listening")
	if err := srv.Serve(lis); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// #endregion main
