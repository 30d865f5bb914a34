package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/huddle/internal/core"
)

// handleSignal checks only the envelope: type, room and addressee.
// The sdp/candidate body stays raw and is relayed byte-for-byte.
func (ctl *Controller) handleSignal(sid core.SessionID, data []byte) {
	var msg core.SignalMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		return
	}
	if msg.RoomID == "" || msg.To == "" {
		return
	}
	ctl.Coord.Signal(sid, msg)
}
