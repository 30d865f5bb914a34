package core

import "github.com/dkeye/huddle/internal/domain"

// RoomTable owns the id -> room mapping, the only process-wide
// mutable state. It is not goroutine safe on its own: the coordinator
// serializes every access inside its per-event critical section.
type RoomTable struct {
	rooms map[domain.RoomID]*Room
}

func NewRoomTable() *RoomTable {
	return &RoomTable{rooms: make(map[domain.RoomID]*Room)}
}

func (t *RoomTable) GetOrCreate(id domain.RoomID) *Room {
	if room, ok := t.rooms[id]; ok {
		return room
	}
	room := NewRoom(id)
	t.rooms[id] = room
	return room
}

func (t *RoomTable) Get(id domain.RoomID) (*Room, bool) {
	room, ok := t.rooms[id]
	return room, ok
}

// RemoveIfEmpty drops the room once its active roster is empty.
// Any waiting entries are discarded with it.
func (t *RoomTable) RemoveIfEmpty(id domain.RoomID) {
	if room, ok := t.rooms[id]; ok && len(room.Members) == 0 {
		delete(t.rooms, id)
	}
}

// All exposes the live rooms for table-wide sweeps (disconnect
// cleanup, occupancy listing).
func (t *RoomTable) All() map[domain.RoomID]*Room {
	return t.rooms
}

func (t *RoomTable) Len() int { return len(t.rooms) }
