package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

func (ctl *Controller) handleStateUpdate(sid core.SessionID, data []byte) {
	type statePayload struct {
		Type    string            `json:"type"`
		RoomID  string            `json:"roomId"`
		Partial core.StatePartial `json:"partial"`
	}
	var p statePayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad state-update payload")
		return
	}
	ctl.Coord.StateUpdate(sid, domain.RoomID(p.RoomID), p.Partial)
}

func (ctl *Controller) handleRename(sid core.SessionID, data []byte) {
	type renamePayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Name   string `json:"name"`
	}
	var p renamePayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad rename payload")
		return
	}
	ctl.Coord.Rename(sid, domain.RoomID(p.RoomID), p.Name)
}
