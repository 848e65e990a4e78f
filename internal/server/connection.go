package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/cardroom/showdown/internal/protocol"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 16384
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = websocket.ErrCloseSent

// Connection represents a websocket client connection
type Connection struct {
	conn      *websocket.Conn
	send      chan *protocol.Message
	logger    zerolog.Logger
	server    *Server
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger zerolog.Logger, server *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		send:   make(chan *protocol.Message, 64),
		logger: logger.With().Str("component", "conn").Logger(),
		server: server,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for delivery to the client
func (c *Connection) SendMessage(msg *protocol.Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Send channel was closed during shutdown
			c.logger.Debug().Interface("panic", r).Msg("Send on closed connection")
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn().Msg("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg protocol.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("Websocket error")
			}
			return
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error().Err(err).Msg("Failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage routes incoming envelopes
func (c *Connection) handleMessage(msg *protocol.Message) {
	c.logger.Debug().Str("type", string(msg.Type)).Msg("Received message")

	switch msg.Type {
	case protocol.TypeEvaluate:
		var req protocol.EvaluateRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError("", "invalid_message", "failed to parse evaluate request: "+err.Error())
			return
		}
		c.handleEvaluate(&req)

	default:
		c.sendError("", "unknown_message_type",
			fmt.Sprintf("%s: %s", protocol.ErrUnknownMessageType, msg.Type))
	}
}

func (c *Connection) handleEvaluate(req *protocol.EvaluateRequest) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	resp, evalErr := c.server.evaluate(req)
	if evalErr != nil {
		c.sendError(evalErr.RequestID, evalErr.Code, evalErr.Message)
		return
	}

	msg, err := protocol.NewMessage(protocol.TypeResult, resp)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to encode result")
		return
	}
	_ = c.SendMessage(msg) // Ignore send errors
}

// sendError sends an error envelope to the client
func (c *Connection) sendError(requestID, code, message string) {
	msg, err := protocol.NewMessage(protocol.TypeError, &protocol.Error{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create error message")
		return
	}

	_ = c.SendMessage(msg) // Ignore send errors during error handling
}
