package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/huddle/internal/domain"
)

func TestRoomTableGetOrCreate(t *testing.T) {
	tbl := NewRoomTable()

	room := tbl.GetOrCreate("r")
	require.NotNil(t, room)
	assert.Equal(t, domain.RoomID("r"), room.ID)
	assert.False(t, room.Locked)
	assert.Empty(t, room.Members)
	assert.Empty(t, room.Waiting)

	// Same id resolves to the same room, not a fresh one.
	room.Locked = true
	again := tbl.GetOrCreate("r")
	assert.Same(t, room, again)
	assert.Equal(t, 1, tbl.Len())
}

func TestRoomTableGet(t *testing.T) {
	tbl := NewRoomTable()
	_, ok := tbl.Get("r")
	assert.False(t, ok)

	tbl.GetOrCreate("r")
	room, ok := tbl.Get("r")
	assert.True(t, ok)
	assert.NotNil(t, room)
}

func TestRoomTableRemoveIfEmpty(t *testing.T) {
	tbl := NewRoomTable()
	room := tbl.GetOrCreate("r")

	st := domain.NewMemberState("a", domain.RoleHost)
	room.Members["a"] = &st
	tbl.RemoveIfEmpty("r")
	_, ok := tbl.Get("r")
	assert.True(t, ok, "occupied room must survive")

	delete(room.Members, "a")
	tbl.RemoveIfEmpty("r")
	_, ok = tbl.Get("r")
	assert.False(t, ok)

	// Removing an unknown id is a no-op.
	tbl.RemoveIfEmpty("ghost")
}
