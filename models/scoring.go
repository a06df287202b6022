package models

import "math/rand"

const (
	FlightCapacity             = 100
	OverbookingPenaltyPerSeat  = 6000
	UnderbookingPenaltyPerSeat = 3000
	CancellationProbability    = 0.1
)

// ShowUpCounter reports how many of a booking's passengers show up at
// departure. The stochastic model is the default; tests substitute
// deterministic counters.
type ShowUpCounter func(b *BookingRequest) int

// StochasticShowUps rolls each passenger independently against the
// cancellation probability. Fresh randomness at scoring time: identical
// accepted sets can score differently across games.
func StochasticShowUps(rng *rand.Rand) ShowUpCounter {
	return func(b *BookingRequest) int {
		showedUp := 0
		for range b.Passengers {
			if rng.Float64() > CancellationProbability {
				showedUp++
			}
		}
		return showedUp
	}
}

// scorePlayer fills in revenue, penalties and total score for one player.
// Called exactly once, when the room finishes.
func scorePlayer(p *Player, showUps ShowUpCounter) {
	totalShowedUp := 0
	totalRevenue := 0

	for i := range p.AcceptedBookings {
		booking := &p.AcceptedBookings[i]
		showedUp := showUps(booking)
		p.ShowUpHistory[booking.BookingID] = showedUp
		totalShowedUp += showedUp
		totalRevenue += showedUp * booking.PricePerSeat
	}

	p.FinalRevenue = totalRevenue
	if totalShowedUp > FlightCapacity {
		p.OverbookingPenalty = (totalShowedUp - FlightCapacity) * OverbookingPenaltyPerSeat
	} else if totalShowedUp < FlightCapacity {
		p.UnderbookingPenalty = (FlightCapacity - totalShowedUp) * UnderbookingPenaltyPerSeat
	}
	p.TotalScore = p.FinalRevenue - p.OverbookingPenalty - p.UnderbookingPenalty
}
