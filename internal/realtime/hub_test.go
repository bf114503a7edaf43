package realtime

import (
	"context"
	"testing"
	"time"
)

func startTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := New(&Config{Port: -1})
	if err := hub.Start(); err != nil {
		t.Fatalf("failed to start hub: %v", err)
	}
	t.Cleanup(hub.Shutdown)
	return hub
}

func TestPublishSubscribe(t *testing.T) {
	hub := startTestHub(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := hub.Subscribe(ctx, 7, 42)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	payload := `{"type":"case.closed"}`
	if err := hub.Publish(7, 42, []byte(payload)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case data := <-events:
		if string(data) != payload {
			t.Fatalf("got %q, want %q", data, payload)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	// Another user's subject must not receive it.
	other, err := hub.Subscribe(ctx, 7, 43)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if err := hub.Publish(7, 42, []byte(payload)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	select {
	case data := <-other:
		t.Fatalf("unexpected delivery to other user: %q", data)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestSubscribeCancelLeavesChannelOpen(t *testing.T) {
	hub := startTestHub(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := hub.Subscribe(ctx, 1, 2)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if err := hub.Publish(1, 2, []byte("hello")); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	cancel()
	time.Sleep(100 * time.Millisecond)

	// Publishing after the reader disconnected must not panic; the channel
	// stays open so a send racing the unsubscribe cannot hit a closed channel.
	for i := 0; i < 50; i++ {
		if err := hub.Publish(1, 2, []byte("late")); err != nil {
			t.Fatalf("late publish failed: %v", err)
		}
	}

	select {
	case _, ok := <-events:
		if !ok {
			t.Fatal("subscription channel was closed")
		}
	default:
	}
}
