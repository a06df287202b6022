package models

import "encoding/json"

// WSMessage is the envelope for every server-to-client push.
type WSMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Action is the decoded kind of a client message. Anything the server does
// not recognize maps to ActionUnknown and is ignored, never fatal.
type Action int

const (
	ActionUnknown Action = iota
	ActionStartGame
	ActionAcceptBooking
	ActionRejectBooking
)

// ActionMessage is the wire form of a client action. Round, when present,
// names the round the client was looking at so that decisions arriving after
// a round has advanced can be discarded instead of hitting the next offer.
type ActionMessage struct {
	Action string `json:"action"`
	Round  *int   `json:"round,omitempty"`
}

func ParseActionMessage(data []byte) (ActionMessage, error) {
	var msg ActionMessage
	err := json.Unmarshal(data, &msg)
	return msg, err
}

func (m ActionMessage) Kind() Action {
	switch m.Action {
	case "start_game":
		return ActionStartGame
	case "accept_booking":
		return ActionAcceptBooking
	case "reject_booking":
		return ActionRejectBooking
	default:
		return ActionUnknown
	}
}

// TargetRound is the round this message aims at, or AnyRound for clients
// that do not echo one.
func (m ActionMessage) TargetRound() int {
	if m.Round != nil {
		return *m.Round
	}
	return AnyRound
}
