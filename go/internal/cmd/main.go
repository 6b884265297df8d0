package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/gridiron/go/internal/gateway"
	"github.com/mcdev12/gridiron/go/internal/outbox"
	outboxdb "github.com/mcdev12/gridiron/go/internal/outbox/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	database, dbCfg, err := setupDatabase()
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}
	defer database.Close()

	services := setupServices(database)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Outbox relay: game events flow db -> NATS JetStream -> websocket gateway.
	jsCfg := outbox.DefaultJetStreamConfig()
	jsCfg.URL = cfg.Nats.URL
	publisher, err := outbox.NewJetStreamPublisher(jsCfg)
	if err != nil {
		log.Fatalf("Failed to create JetStream publisher: %v", err)
	}
	defer publisher.Close()

	outboxRepo := outbox.NewRepository(outboxdb.New(database))
	switch cfg.Outbox.Mode {
	case "worker":
		workerCfg := outbox.DefaultConfig()
		workerCfg.PollInterval = cfg.Outbox.PollInterval
		workerCfg.BatchSize = cfg.Outbox.BatchSize
		worker := outbox.NewWorker(database, publisher, workerCfg,
			clockwork.NewRealClock(), slog.Default())
		if err := worker.Start(ctx); err != nil {
			log.Fatalf("Failed to start outbox worker: %v", err)
		}
		defer worker.Stop()
	default:
		listenerCfg := outbox.DefaultListenerConfig()
		listenerCfg.DatabaseURL = dbCfg.DSN()
		listenerCfg.BatchSize = cfg.Outbox.BatchSize
		listener, err := outbox.NewListener(database, outboxRepo, publisher, listenerCfg)
		if err != nil {
			log.Fatalf("Failed to create outbox listener: %v", err)
		}
		go func() {
			if err := listener.Start(ctx); err != nil {
				log.Printf("Outbox listener stopped: %v", err)
			}
		}()
	}

	// WebSocket gateway: consume game events and fan them out per season.
	connManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	go connManager.Start(ctx)

	consumerCfg := gateway.DefaultJetStreamConsumerConfig()
	consumerCfg.URL = cfg.Nats.URL
	consumer, err := gateway.NewEventConsumer(connManager, consumerCfg)
	if err != nil {
		log.Fatalf("Failed to create event consumer: %v", err)
	}
	go func() {
		if err := consumer.Start(ctx); err != nil {
			log.Printf("Event consumer stopped: %v", err)
		}
	}()
	defer consumer.Stop()

	server := setupServer(cfg, services, gateway.NewWebSocketHandler(connManager))

	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutting down...")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
