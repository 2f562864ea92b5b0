// cmd/worker/main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/unclebandit/ambassador-campaign/internal/config"
	"github.com/unclebandit/ambassador-campaign/internal/queue"
	"github.com/unclebandit/ambassador-campaign/internal/service"
)

// The review worker drains submission events that the server published to
// RabbitMQ (QUEUE_BACKEND=amqp).
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	q, err := queue.DialAMQP(cfg.AMQPURL)
	if err != nil {
		log.Fatal(err)
	}
	defer q.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	desk := &service.ReviewDesk{}
	queue.StartSubmissionEventSubscriber(q, desk.Handle)

	log.Println("Worker running, waiting for submission events...")
	<-ctx.Done()
	log.Printf("Worker stopping after %d events\n", desk.Received())
}
