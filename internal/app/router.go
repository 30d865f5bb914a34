package app

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

const maxChatLen = 2000

// Signal relays one offer/answer/candidate envelope to its addressee.
// The sdp/candidate body passes through untouched; delivery happens
// only when the target is an active member of the stated room right
// now. Anything else drops silently so senders cannot probe rooms.
func (c *Coordinator) Signal(from core.SessionID, msg core.SignalMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(msg.RoomID)
	if !ok {
		return
	}
	if _, ok := room.Members[msg.To]; !ok {
		return
	}
	msg.From = from
	c.send(msg.To, msg)
	log.Debug().Str("module", "app.router").Str("type", msg.Type).Str("from", string(from)).Str("to", string(msg.To)).Msg("signal relayed")
}

// Chat delivers a text message to one member when to names a current
// member, otherwise to every other active member. The server stamps
// the delivery time.
func (c *Coordinator) Chat(from core.SessionID, roomID domain.RoomID, text string, to core.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if r := []rune(text); len(r) > maxChatLen {
		text = string(r[:maxChatLen])
	}

	msg := core.Chat{Type: core.TypeChat, From: from, Text: text, TS: time.Now().UnixMilli()}
	if _, direct := room.Members[to]; to != "" && direct {
		c.send(to, msg)
		return
	}
	c.broadcast(room, from, msg)
}

// Reaction fans an emoji out to every other member, or to a single
// member when directed. Never echoed to the sender; self-display is
// the client's own concern.
func (c *Coordinator) Reaction(from core.SessionID, roomID domain.RoomID, emoji string, to core.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok {
		return
	}
	if emoji == "" {
		return
	}

	msg := core.Reaction{Type: core.TypeReaction, From: from, Emoji: emoji}
	if _, direct := room.Members[to]; to != "" && direct {
		c.send(to, msg)
		return
	}
	c.broadcast(room, from, msg)
}
