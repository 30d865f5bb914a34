package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
	"github.com/dkeye/huddle/internal/domain"
)

func (ctl *Controller) handleChat(sid core.SessionID, data []byte) {
	type chatPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Text   string `json:"text"`
		To     string `json:"to,omitempty"`
	}
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		return
	}
	ctl.Coord.Chat(sid, domain.RoomID(p.RoomID), p.Text, core.SessionID(p.To))
}

func (ctl *Controller) handleReaction(sid core.SessionID, data []byte) {
	type reactionPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Emoji  string `json:"emoji"`
		To     string `json:"to,omitempty"`
	}
	var p reactionPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad reaction payload")
		return
	}
	ctl.Coord.Reaction(sid, domain.RoomID(p.RoomID), p.Emoji, core.SessionID(p.To))
}
