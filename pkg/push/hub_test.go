package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub(t *testing.T) {
	a := assert.New(t)
	hub := NewHub()

	c1 := NewClient(nil, 1)
	c2 := NewClient(nil, 1)
	c3 := NewClient(nil, 2)

	hub.Register(c1)
	hub.Register(c2)
	hub.Register(c3)

	a.Equal(2, hub.ClientCount(1))
	a.Equal(1, hub.ClientCount(2))

	a.Equal(2, hub.Broadcast(1, "state"))
	a.Equal("state", <-c1.SendChan())
	a.Equal("state", <-c2.SendChan())

	select {
	case <-c3.SendChan():
		t.Error("client for another player must not receive the message")
	default:
	}

	hub.Unregister(c2)
	a.Equal(1, hub.ClientCount(1))
	a.Equal(1, hub.Broadcast(1, "state2"))

	hub.Unregister(c1)
	hub.Unregister(c3)
	a.Equal(0, hub.Broadcast(1, "state3"))

	// unregistering twice is harmless
	hub.Unregister(c1)
}

func TestClient_SendFullBuffer(t *testing.T) {
	a := assert.New(t)
	c := NewClient(nil, 5)

	for i := 0; i < 256; i++ {
		a.True(c.Send(i))
	}

	a.False(c.Send("overflow"))
	a.Equal("player:5", c.String())
	a.Equal(int64(5), c.PlayerID())
}
