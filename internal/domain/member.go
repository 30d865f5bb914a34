// Package domain contains entity without logic, just meta-data
package domain

import "strings"

type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

const MaxNameLen = 64

// MemberState is one member's presence meta inside a room.
// Owned by the room; mutated only through coordinator operations,
// never by the session that it describes.
type MemberState struct {
	Name       string `json:"name"`
	Muted      bool   `json:"muted"`
	VideoOn    bool   `json:"videoOn"`
	HandRaised bool   `json:"handRaised"`
	Sharing    bool   `json:"sharing"`
	Role       Role   `json:"role"`
}

// NewMemberState avoids raw literals in the coordinator and keeps
// the defaults (camera on, everything else off) in one place.
func NewMemberState(name string, role Role) MemberState {
	return MemberState{Name: name, VideoOn: true, Role: role}
}

// SanitizeName trims and caps a display name. An empty result falls
// back to a guest label derived from the session id.
func SanitizeName(raw, sid string) string {
	name := strings.TrimSpace(raw)
	if r := []rune(name); len(r) > MaxNameLen {
		name = string(r[:MaxNameLen])
	}
	if name == "" {
		tag := sid
		if len(tag) > 8 {
			tag = tag[:8]
		}
		name = "guest-" + tag
	}
	return name
}
