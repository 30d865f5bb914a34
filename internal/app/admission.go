package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

// Join admits a session into a room, queues it behind a lock, or
// rejects it outright when the room is full. The capacity check runs
// before the lock check: a full locked room answers room-full, it
// never queues.
func (c *Coordinator) Join(sid core.SessionID, roomID domain.RoomID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = domain.SanitizeName(name, string(sid))
	room := c.table.GetOrCreate(roomID)

	// A repeat join from an active member just refreshes its snapshot;
	// re-admitting would demote a host to guest.
	if st, ok := room.Members[sid]; ok {
		c.send(sid, core.Joined{Type: core.TypeJoined, SelfID: sid, SelfRole: st.Role, Peers: room.PeersSnapshot(sid)})
		return
	}
	// A fresh join supersedes any pending knock.
	_, wasWaiting := room.Waiting[sid]
	delete(room.Waiting, sid)

	if len(room.Members) >= c.maxRoomSize {
		c.send(sid, core.ErrorMessage{Type: core.TypeError, Error: core.ErrRoomFull})
		if wasWaiting {
			c.broadcastWaitingList(room)
		}
		log.Info().Str("module", "app.admission").Str("sid", string(sid)).Str("room", string(roomID)).Msg("join rejected: room full")
		return
	}

	if room.Locked && len(room.Members) > 0 {
		room.Waiting[sid] = domain.WaitingEntry{Name: name}
		c.send(sid, core.WaitingAck{Type: core.TypeWaiting})
		c.broadcastWaitingList(room)
		log.Info().Str("module", "app.admission").Str("sid", string(sid)).Str("room", string(roomID)).Msg("queued in waiting room")
		return
	}

	role := domain.RoleGuest
	if len(room.Members) == 0 {
		role = domain.RoleHost
	}
	st := domain.NewMemberState(name, role)
	peers := room.PeersSnapshot(sid)
	room.Members[sid] = &st

	c.send(sid, core.Joined{Type: core.TypeJoined, SelfID: sid, SelfRole: role, Peers: peers})
	c.broadcast(room, sid, core.PeerJoined{Type: core.TypePeerJoined, ID: sid, MemberState: st})
	if wasWaiting {
		c.broadcastWaitingList(room)
	}
	log.Info().Str("module", "app.admission").Str("sid", string(sid)).Str("room", string(roomID)).Str("role", string(role)).Msg("joined")
}

// Admit moves a waiting session into the active roster. Host only;
// silently ignored otherwise so non-hosts learn nothing.
func (c *Coordinator) Admit(host core.SessionID, roomID domain.RoomID, target core.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok || !room.IsHost(host) {
		return
	}
	entry, ok := room.Waiting[target]
	if !ok {
		return
	}

	delete(room.Waiting, target)
	st := domain.NewMemberState(entry.Name, domain.RoleGuest)
	peers := room.PeersSnapshot(target)
	room.Members[target] = &st

	c.send(target, core.Joined{Type: core.TypeJoined, SelfID: target, SelfRole: domain.RoleGuest, Peers: peers})
	c.broadcast(room, target, core.PeerJoined{Type: core.TypePeerJoined, ID: target, MemberState: st})
	c.broadcastWaitingList(room)
	log.Info().Str("module", "app.admission").Str("sid", string(target)).Str("room", string(roomID)).Msg("admitted")
}

// Deny drops a waiting session. The denied session hears exactly one
// denied message and nothing else.
func (c *Coordinator) Deny(host core.SessionID, roomID domain.RoomID, target core.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok || !room.IsHost(host) {
		return
	}
	if _, ok := room.Waiting[target]; !ok {
		return
	}

	delete(room.Waiting, target)
	c.send(target, core.Denied{Type: core.TypeDenied})
	c.broadcastWaitingList(room)
	log.Info().Str("module", "app.admission").Str("sid", string(target)).Str("room", string(roomID)).Msg("denied")
}

// SetLock flips the room lock. Host only, silently ignored otherwise.
// Waiting sessions are not told; only active members see lock-state.
func (c *Coordinator) SetLock(host core.SessionID, roomID domain.RoomID, locked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.table.Get(roomID)
	if !ok || !room.IsHost(host) {
		return
	}
	room.Locked = locked
	c.broadcast(room, "", core.LockState{Type: core.TypeLockState, Locked: locked})
	log.Info().Str("module", "app.admission").Str("room", string(roomID)).Bool("locked", locked).Msg("lock state changed")
}
