package core

import (
	"encoding/json"

	"github.com/dkeye/huddle/internal/domain"
)

// Wire message types. Client-to-server envelopes carry the same type
// strings; the signal adapter dispatches on them.
const (
	TypeJoin        = "join"
	TypeJoined      = "joined"
	TypeWaiting     = "waiting"
	TypeWaitingList = "waiting-list"
	TypeLockRoom    = "lock-room"
	TypeLockState   = "lock-state"
	TypeAdmit       = "admit"
	TypeDeny        = "deny"
	TypeDenied      = "denied"
	TypePeerJoined  = "peer-joined"
	TypePeerLeft    = "peer-left"
	TypeOffer       = "offer"
	TypeAnswer      = "answer"
	TypeCandidate   = "candidate"
	TypeLeave       = "leave"
	TypeStateUpdate = "state-update"
	TypeRename      = "rename"
	TypeChat        = "chat"
	TypeReaction    = "reaction"
	TypeError       = "error"
)

// PeerInfo is one member's public view: id plus the flattened state.
type PeerInfo struct {
	ID SessionID `json:"id"`
	domain.MemberState
}

// WaitingInfo is one waiting-queue entry as broadcast to members.
type WaitingInfo struct {
	ID   SessionID `json:"id"`
	Name string    `json:"name"`
}

// Joined acknowledges a join or admit: the session's own id and role
// plus a snapshot of everyone already present.
type Joined struct {
	Type     string      `json:"type"`
	SelfID   SessionID   `json:"selfId"`
	SelfRole domain.Role `json:"selfRole"`
	Peers    []PeerInfo  `json:"peers"`
}

type WaitingAck struct {
	Type string `json:"type"`
}

type WaitingList struct {
	Type string        `json:"type"`
	List []WaitingInfo `json:"list"`
}

type LockState struct {
	Type   string `json:"type"`
	Locked bool   `json:"locked"`
}

type Denied struct {
	Type string `json:"type"`
}

type PeerJoined struct {
	Type string    `json:"type"`
	ID   SessionID `json:"id"`
	domain.MemberState
}

type PeerLeft struct {
	Type string    `json:"type"`
	ID   SessionID `json:"id"`
}

// SignalMessage is the relayed negotiation envelope. The sdp and
// candidate bodies belong to the media layer and pass through as raw
// bytes, untouched; only type, to and roomId are schema-checked.
type SignalMessage struct {
	Type      string          `json:"type"`
	RoomID    domain.RoomID   `json:"roomId"`
	SDP       json.RawMessage `json:"sdp,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
	To        SessionID       `json:"to"`
	From      SessionID       `json:"from,omitempty"`
}

// StatePartial carries only the fields a state-update actually sets.
// Name rides along for rename broadcasts.
type StatePartial struct {
	Name       *string `json:"name,omitempty"`
	Muted      *bool   `json:"muted,omitempty"`
	VideoOn    *bool   `json:"videoOn,omitempty"`
	HandRaised *bool   `json:"handRaised,omitempty"`
	Sharing    *bool   `json:"sharing,omitempty"`
}

type StateUpdate struct {
	Type    string       `json:"type"`
	ID      SessionID    `json:"id"`
	Partial StatePartial `json:"partial"`
}

type Chat struct {
	Type string    `json:"type"`
	From SessionID `json:"from"`
	Text string    `json:"text"`
	TS   int64     `json:"ts"`
}

type Reaction struct {
	Type  string    `json:"type"`
	From  SessionID `json:"from"`
	Emoji string    `json:"emoji"`
}

type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// ErrRoomFull is the one protocol error a joiner can receive.
const ErrRoomFull = "room-full"
