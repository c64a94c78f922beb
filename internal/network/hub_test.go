package network

import (
	"testing"

	"expedition-server/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("client_1")

	b.SendTo("client_1", api.ServerMessage{Type: api.MessageAnnounce, Message: "hi"})

	select {
	case msg := <-ch:
		if msg.Message != "hi" {
			t.Errorf("got message %q", msg.Message)
		}
	default:
		t.Fatal("no message delivered")
	}
}

func TestBroadcaster_SendToUnknownIsNoop(t *testing.T) {
	b := NewBroadcaster()
	// Не должно паниковать и не должно блокировать
	b.SendTo("ghost", api.ServerMessage{Type: api.MessageError})
}

func TestBroadcaster_Broadcast(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.Broadcast(api.ServerMessage{Type: api.MessageAnnounce})

	for name, ch := range map[string]chan api.ServerMessage{"a": a, "c": c} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %s missed the broadcast", name)
		}
	}
}

func TestBroadcaster_ReregisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("client_1")
	b.Register("client_1")

	if _, open := <-old; open {
		t.Error("old channel must be closed on re-register")
	}
	if got := b.SubscriberCount(); got != 1 {
		t.Errorf("SubscriberCount = %d, want 1", got)
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("client_1")
	b.Unregister("client_1")

	if _, open := <-ch; open {
		t.Error("channel must be closed on unregister")
	}
	if got := b.SubscriberCount(); got != 0 {
		t.Errorf("SubscriberCount = %d, want 0", got)
	}
}
