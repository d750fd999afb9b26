package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"jackut/internal/config"
	"jackut/internal/handler"
	"jackut/internal/service"
	"jackut/internal/session"
	"jackut/internal/store"
)

// Run loads configuration, restores the snapshot, wires the system and
// serves HTTP until interrupted. On interrupt the full state is written
// back to the snapshot file before exit.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := store.NewRegistry(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	sessions := session.NewRegistry(cfg.JWTSecret)
	sys := service.New(registry, sessions)

	router := NewRouter(RouterConfig{
		AuthHandler:      handler.NewAuthHandler(sys),
		ProfileHandler:   handler.NewProfileHandler(sys),
		FriendHandler:    handler.NewFriendHandler(sys),
		MessageHandler:   handler.NewMessageHandler(sys),
		CommunityHandler: handler.NewCommunityHandler(sys),
		RelationHandler:  handler.NewRelationHandler(sys),
		SystemHandler:    handler.NewSystemHandler(sys),
	})

	srv := &stdhttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] Listening on :%s (snapshot: %s)", cfg.ServerPort, cfg.SnapshotPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Println("[Server] Shutting down, writing snapshot")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Server] HTTP shutdown: %v", err)
		}
		if err := sys.Shutdown(); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	return nil
}
