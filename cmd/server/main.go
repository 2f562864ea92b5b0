// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/ambassador-campaign/internal/config"
	"github.com/unclebandit/ambassador-campaign/internal/queue"
	"github.com/unclebandit/ambassador-campaign/internal/server"
	"github.com/unclebandit/ambassador-campaign/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Submission events go to RabbitMQ when configured, otherwise they are
	// handled in-process by the review desk.
	var q queue.Queue
	if cfg.QueueBackend == config.QueueAMQP {
		amqpQueue, err := queue.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
		log.Println("✅ Publishing submission events to RabbitMQ")
	} else {
		q = queue.NewInMemoryQueue()
		queue.StartSubmissionEventSubscriber(q, (&service.ReviewDesk{}).Handle)
	}

	srv, err := server.New(cfg, q, nil)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}
	srv.StartJanitors(ctx, time.Minute)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Println("⚠️ Shutdown:", err)
		}
	}()

	log.Println("🚀 Server running on", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("👋 Server stopped")
}
