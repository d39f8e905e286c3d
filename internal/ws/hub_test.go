package ws

import (
	"testing"
	"time"
)

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, nil, nil, nil)
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	if _, ok := <-client.send; ok {
		t.Fatal("send channel still open after unregister")
	}
}

func TestHub_SlowConsumerKickThenEnqueue(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, nil, nil, nil)
	hub.Register(client)
	waitForClients(t, hub, 1)

	for i := 0; i < cap(client.send); i++ {
		client.send <- []byte("queued")
	}

	hub.Broadcast([]byte(`{"type":"gig_created"}`))
	waitForClients(t, hub, 0)

	// The reader goroutine may still be finishing an answer when the hub
	// kicks the client; its reply must be dropped, not panic the process.
	client.enqueue(chatReplyEvent{Type: "chat_reply", Reply: "late"})

	drained := 0
	for range client.send {
		drained++
	}
	if drained != cap(client.send) {
		t.Fatalf("drained %d frames, want %d", drained, cap(client.send))
	}
}
