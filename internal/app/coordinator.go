package app

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

// Coordinator is the room state machine and message router. Every
// inbound event runs as one atomic step under mu: read, mutate,
// then emit — so no broadcast can ever observe a half-applied room.
type Coordinator struct {
	mu          sync.Mutex
	table       *core.RoomTable
	reg         *Registry
	maxRoomSize int
}

func NewCoordinator(reg *Registry, maxRoomSize int) *Coordinator {
	return &Coordinator{
		table:       core.NewRoomTable(),
		reg:         reg,
		maxRoomSize: maxRoomSize,
	}
}

// RoomInfo is the read-only occupancy view served by the HTTP API.
type RoomInfo struct {
	ID      domain.RoomID `json:"id"`
	Members int           `json:"members"`
	Locked  bool          `json:"locked"`
}

func (c *Coordinator) ListRooms() []RoomInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RoomInfo, 0, c.table.Len())
	for id, room := range c.table.All() {
		out = append(out, RoomInfo{ID: id, Members: len(room.Members), Locked: room.Locked})
	}
	return out
}

// send marshals v and fire-and-forgets it to one session. Delivery is
// at most once: a full send buffer or a gone session just drops.
func (c *Coordinator) send(sid core.SessionID, v any) {
	conn, ok := c.reg.Get(sid)
	if !ok {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("send marshal")
		return
	}
	if err := conn.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "app.coordinator").Str("sid", string(sid)).Msg("send dropped")
	}
}

// broadcast sends v to every active member of the room except the
// given one. Pass an empty SessionID to reach the whole room.
func (c *Coordinator) broadcast(room *core.Room, except core.SessionID, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("broadcast marshal")
		return
	}
	for sid := range room.Members {
		if sid == except {
			continue
		}
		conn, ok := c.reg.Get(sid)
		if !ok {
			continue
		}
		if err := conn.TrySend(b); err != nil {
			log.Warn().Err(err).Str("module", "app.coordinator").Str("sid", string(sid)).Msg("broadcast dropped")
		}
	}
}

func (c *Coordinator) broadcastWaitingList(room *core.Room) {
	c.broadcast(room, "", core.WaitingList{Type: core.TypeWaitingList, List: room.WaitingSnapshot()})
}
