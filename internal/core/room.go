package core

import (
	"slices"
	"strings"

	"github.com/dkeye/huddle/internal/domain"
)

// Room holds one room's active members, its waiting queue and the
// lock flag. It is a plain value entity: all access is serialized by
// the coordinator, so there is no lock here.
type Room struct {
	ID      domain.RoomID
	Locked  bool
	Members map[SessionID]*domain.MemberState
	Waiting map[SessionID]domain.WaitingEntry
}

func NewRoom(id domain.RoomID) *Room {
	return &Room{
		ID:      id,
		Members: make(map[SessionID]*domain.MemberState),
		Waiting: make(map[SessionID]domain.WaitingEntry),
	}
}

// IsHost reports whether sid is an active member holding the host role.
func (r *Room) IsHost(sid SessionID) bool {
	st, ok := r.Members[sid]
	return ok && st.Role == domain.RoleHost
}

// PeersSnapshot returns every active member except the given one,
// sorted by id so fan-out payloads are deterministic.
func (r *Room) PeersSnapshot(except SessionID) []PeerInfo {
	out := make([]PeerInfo, 0, len(r.Members))
	for sid, st := range r.Members {
		if sid == except {
			continue
		}
		out = append(out, PeerInfo{ID: sid, MemberState: *st})
	}
	slices.SortFunc(out, func(a, b PeerInfo) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}

// WaitingSnapshot returns the current waiting queue, sorted by id.
func (r *Room) WaitingSnapshot() []WaitingInfo {
	out := make([]WaitingInfo, 0, len(r.Waiting))
	for sid, e := range r.Waiting {
		out = append(out, WaitingInfo{ID: sid, Name: e.Name})
	}
	slices.SortFunc(out, func(a, b WaitingInfo) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}
