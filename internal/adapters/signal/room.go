package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

func (ctl *Controller) handleJoin(sid core.SessionID, data []byte) {
	type joinPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Name   string `json:"name,omitempty"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}
	if !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("join throttled")
		return
	}
	ctl.Coord.Join(sid, domain.RoomID(p.RoomID), p.Name)
}

func (ctl *Controller) handleLeave(sid core.SessionID, data []byte) {
	type leavePayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
	}
	var p leavePayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		return
	}
	ctl.Coord.Leave(sid, domain.RoomID(p.RoomID))
}

func (ctl *Controller) handleLockRoom(sid core.SessionID, data []byte) {
	type lockPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Locked bool   `json:"locked"`
	}
	var p lockPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad lock-room payload")
		return
	}
	ctl.Coord.SetLock(sid, domain.RoomID(p.RoomID), p.Locked)
}

type hostActionPayload struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	ID     string `json:"id"`
}

func (ctl *Controller) handleAdmit(sid core.SessionID, data []byte) {
	var p hostActionPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" || p.ID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad admit payload")
		return
	}
	ctl.Coord.Admit(sid, domain.RoomID(p.RoomID), core.SessionID(p.ID))
}

func (ctl *Controller) handleDeny(sid core.SessionID, data []byte) {
	var p hostActionPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" || p.ID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad deny payload")
		return
	}
	ctl.Coord.Deny(sid, domain.RoomID(p.RoomID), core.SessionID(p.ID))
}
