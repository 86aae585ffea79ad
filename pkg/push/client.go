// Package push delivers game state updates to connected web clients.
package push

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	playerID int64
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID int64) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		playerID: playerID,
	}
}

// PlayerID returns the owning player's ID
func (c *Client) PlayerID() int64 {
	return c.playerID
}

// Send sends a message to the web client. Returns false if the client's
// buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("player:%d", c.playerID)
}
