package models

// Decision is a player's recorded choice for one booking.
type Decision string

const (
	DecisionAccepted Decision = "Accepted"
	DecisionRejected Decision = "Rejected"
)

type Player struct {
	PlayerID            string           `json:"playerId"`
	Name                string           `json:"name"`
	AcceptedBookings    []BookingRequest `json:"acceptedBookings"`
	FinalRevenue        int              `json:"finalRevenue"`
	OverbookingPenalty  int              `json:"overbookingPenalty"`
	UnderbookingPenalty int              `json:"underbookingPenalty"`
	TotalScore          int              `json:"totalScore"`
	ChoiceHistory       map[int]Decision `json:"choiceHistory"`
	ShowUpHistory       map[int]int      `json:"showUpHistory"`
}

func NewPlayer(id, name string) *Player {
	return &Player{
		PlayerID:      id,
		Name:          name,
		ChoiceHistory: make(map[int]Decision),
		ShowUpHistory: make(map[int]int),
	}
}

// clone returns a deep copy safe to hand to renderers outside the room lock.
func (p *Player) clone() Player {
	out := *p
	out.AcceptedBookings = append([]BookingRequest(nil), p.AcceptedBookings...)
	out.ChoiceHistory = make(map[int]Decision, len(p.ChoiceHistory))
	for k, v := range p.ChoiceHistory {
		out.ChoiceHistory[k] = v
	}
	out.ShowUpHistory = make(map[int]int, len(p.ShowUpHistory))
	for k, v := range p.ShowUpHistory {
		out.ShowUpHistory[k] = v
	}
	return out
}
