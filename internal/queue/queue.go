package queue

import (
	"fmt"
	"log"
	"sync"
)

// Topic accepted submissions are announced on.
const SubmissionEventsTopic = "submission_events"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue fans a payload out to every subscriber of a topic. Each
// delivery happens once, on its own goroutine.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	wg       sync.WaitGroup
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := append([]func(payload any) error(nil), q.handlers[topic]...)
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		q.wg.Add(1)
		go q.deliver(topic, handler, payload)
	}

	return nil
}

func (q *InMemoryQueue) deliver(topic string, handler func(payload any) error, payload any) {
	defer q.wg.Done()
	if err := handler(payload); err != nil {
		log.Printf("⚠️ Handler for %s failed: %v\n", topic, err)
		return
	}
	log.Printf("Job processed successfully on %s: %+v\n", topic, payload)
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Wait blocks until every delivery started so far has returned.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

var _ Queue = (*InMemoryQueue)(nil)
