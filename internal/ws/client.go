package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"freelance-hub/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	replyTimeout   = 15 * time.Second
)

type chatReplyEvent struct {
	Type    string `json:"type"`
	Intent  string `json:"intent,omitempty"`
	Matched bool   `json:"matched"`
	Reply   string `json:"reply"`
}

type chatErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Client is one websocket chat session. Each incoming text frame is a chat
// message answered by the bot; broadcasts from the hub are interleaved on
// the same connection.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	closed bool
	chat   usecase.ChatUsecase
	userID *uuid.UUID
	logger *log.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, chat usecase.ChatUsecase, userID *uuid.UUID, logger *log.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		chat:   chat,
		userID: userID,
		logger: logger,
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.logger != nil {
				c.logger.Printf("WS read error | error=%v", err)
			}
			return
		}

		text := string(bytes.TrimSpace(message))
		if text == "" {
			continue
		}
		c.answer(text)
	}
}

func (c *Client) answer(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	reply, err := c.chat.Chat(ctx, c.userID, text)
	if err != nil {
		c.enqueue(chatErrorEvent{Type: "chat_error", Message: "unable to answer right now"})
		if c.logger != nil {
			c.logger.Printf("WS chat error | error=%v", err)
		}
		return
	}
	c.enqueue(chatReplyEvent{Type: "chat_reply", Intent: reply.Intent, Matched: reply.Matched, Reply: reply.Reply})
}

// closeSend shuts the outbound queue. Only the hub calls it, when the
// client unregisters; enqueue holds the same lock, so no send can race
// the close.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) enqueue(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- payload:
	default:
		// Slow consumer; drop the frame rather than block the reader.
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
