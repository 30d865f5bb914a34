package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

// Leave removes a session from one room on explicit request.
func (c *Coordinator) Leave(sid core.SessionID, roomID domain.RoomID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok {
		return
	}
	c.removeFromRoom(sid, room)
}

// Disconnect runs the abrupt-disconnect path: the session is swept
// out of every room it touched, exactly once.
func (c *Coordinator) Disconnect(sid core.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, room := range c.table.All() {
		c.removeFromRoom(sid, room)
	}
	log.Info().Str("module", "app.presence").Str("sid", string(sid)).Msg("disconnected")
}

// removeFromRoom shares the leave/disconnect effect: drop from the
// active roster (announcing peer-left) or from the waiting queue
// (announcing the shorter list), then reap the room if it emptied.
// Caller holds c.mu.
func (c *Coordinator) removeFromRoom(sid core.SessionID, room *core.Room) {
	if _, ok := room.Members[sid]; ok {
		delete(room.Members, sid)
		c.broadcast(room, "", core.PeerLeft{Type: core.TypePeerLeft, ID: sid})
	} else if _, ok := room.Waiting[sid]; ok {
		delete(room.Waiting, sid)
		c.broadcastWaitingList(room)
	} else {
		return
	}
	if len(room.Members) == 0 {
		c.table.RemoveIfEmpty(room.ID)
		log.Info().Str("module", "app.presence").Str("room", string(room.ID)).Msg("room emptied, removed")
	}
}

// StateUpdate merges the fields the partial actually carries into the
// sender's member state and tells everyone else. The sender is never
// echoed: its own UI already reflects the change it asked for.
func (c *Coordinator) StateUpdate(sid core.SessionID, roomID domain.RoomID, partial core.StatePartial) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok {
		return
	}
	st, ok := room.Members[sid]
	if !ok {
		return
	}

	if partial.Muted != nil {
		st.Muted = *partial.Muted
	}
	if partial.VideoOn != nil {
		st.VideoOn = *partial.VideoOn
	}
	if partial.HandRaised != nil {
		st.HandRaised = *partial.HandRaised
	}
	if partial.Sharing != nil {
		st.Sharing = *partial.Sharing
	}
	partial.Name = nil // renames go through Rename, not here

	c.broadcast(room, sid, core.StateUpdate{Type: core.TypeStateUpdate, ID: sid, Partial: partial})
}

// Rename updates the display name and announces it room-wide as a
// state-update, sender included: rename propagation has no reason to
// exclude the renamer's own other tabs.
func (c *Coordinator) Rename(sid core.SessionID, roomID domain.RoomID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok {
		return
	}
	st, ok := room.Members[sid]
	if !ok {
		return
	}

	name = domain.SanitizeName(name, string(sid))
	st.Name = name
	c.broadcast(room, "", core.StateUpdate{
		Type:    core.TypeStateUpdate,
		ID:      sid,
		Partial: core.StatePartial{Name: &name},
	})
	log.Info().Str("module", "app.presence").Str("sid", string(sid)).Str("name", name).Msg("renamed")
}
