package ws

import (
	"encoding/json"
	"time"

	"freelance-hub/internal/usecase"
)

type GigCreatedEvent struct {
	Type      string `json:"type"`
	GigID     string `json:"gig_id"`
	Title     string `json:"title"`
	OwnerName string `json:"owner_name"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes gig lifecycle events to every connected chat client.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyGigCreated(g usecase.GigItem) {
	if n == nil || n.hub == nil {
		return
	}

	evt := GigCreatedEvent{
		Type:      "gig_created",
		GigID:     g.ID.String(),
		Title:     g.Title,
		OwnerName: g.OwnerName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(payload)
}
