package queue

import (
	"errors"
	"sync"
	"testing"
)

func TestInMemoryQueueFanOut(t *testing.T) {
	q := NewInMemoryQueue()

	var mu sync.Mutex
	var got []any
	record := func(payload any) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, payload)
		return nil
	}

	q.Subscribe("topic", record)
	q.Subscribe("topic", record)
	q.Subscribe("other", func(payload any) error {
		t.Errorf("unexpected delivery on other topic: %v", payload)
		return nil
	})

	if err := q.Publish("topic", "hello"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	q.Wait()

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	for _, p := range got {
		if p != "hello" {
			t.Errorf("unexpected payload %v", p)
		}
	}
}

func TestInMemoryQueueNoSubscribers(t *testing.T) {
	q := NewInMemoryQueue()
	if err := q.Publish("nobody", 1); err == nil {
		t.Error("expected error when nobody listens")
	}
}

func TestInMemoryQueueDeliversOnce(t *testing.T) {
	q := NewInMemoryQueue()

	var mu sync.Mutex
	calls := 0
	q.Subscribe(SubmissionEventsTopic, func(payload any) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return errors.New("boom")
	})

	if err := q.Publish(SubmissionEventsTopic, "event"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	q.Wait()

	if calls != 1 {
		t.Errorf("failed handler must not be retried, got %d calls", calls)
	}
}

func TestStartSubmissionEventSubscriber(t *testing.T) {
	q := NewInMemoryQueue()
	done := make(chan any, 1)
	StartSubmissionEventSubscriber(q, func(payload any) error {
		done <- payload
		return nil
	})

	if err := q.Publish(SubmissionEventsTopic, "ok"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if p := <-done; p != "ok" {
		t.Errorf("unexpected payload %v", p)
	}
}
