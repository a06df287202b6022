package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoringBooking(id, volume, price int) BookingRequest {
	return BookingRequest{
		BookingID:    id,
		Volume:       volume,
		PricePerSeat: price,
		Passengers:   make([]Passenger, volume),
	}
}

// stubShowUps maps booking id to a fixed show-up count, bypassing randomness.
func stubShowUps(counts map[int]int) ShowUpCounter {
	return func(b *BookingRequest) int {
		return counts[b.BookingID]
	}
}

func TestScorePlayer_ExactCapacityNoPenalty(t *testing.T) {
	p := NewPlayer("p1", "Ana")
	p.AcceptedBookings = []BookingRequest{
		scoringBooking(0, 60, 4000),
		scoringBooking(1, 40, 5000),
	}

	scorePlayer(p, stubShowUps(map[int]int{0: 60, 1: 40}))

	assert.Equal(t, 60*4000+40*5000, p.FinalRevenue)
	assert.Equal(t, 0, p.OverbookingPenalty)
	assert.Equal(t, 0, p.UnderbookingPenalty)
	assert.Equal(t, p.FinalRevenue, p.TotalScore)
	assert.Equal(t, map[int]int{0: 60, 1: 40}, p.ShowUpHistory)
}

func TestScorePlayer_OverbookingBoundary(t *testing.T) {
	p := NewPlayer("p1", "Ana")
	p.AcceptedBookings = []BookingRequest{scoringBooking(0, 101, 4000)}

	scorePlayer(p, stubShowUps(map[int]int{0: 101}))

	assert.Equal(t, 101*4000, p.FinalRevenue)
	assert.Equal(t, OverbookingPenaltyPerSeat, p.OverbookingPenalty)
	assert.Equal(t, 0, p.UnderbookingPenalty)
	assert.Equal(t, p.FinalRevenue-OverbookingPenaltyPerSeat, p.TotalScore)
}

func TestScorePlayer_UnderbookingBoundary(t *testing.T) {
	p := NewPlayer("p1", "Ana")
	p.AcceptedBookings = []BookingRequest{scoringBooking(0, 99, 4000)}

	scorePlayer(p, stubShowUps(map[int]int{0: 99}))

	assert.Equal(t, 99*4000, p.FinalRevenue)
	assert.Equal(t, 0, p.OverbookingPenalty)
	assert.Equal(t, UnderbookingPenaltyPerSeat, p.UnderbookingPenalty)
	assert.Equal(t, p.FinalRevenue-UnderbookingPenaltyPerSeat, p.TotalScore)
}

func TestScorePlayer_NoAcceptedBookingsGoesNegative(t *testing.T) {
	p := NewPlayer("p1", "Ana")

	scorePlayer(p, stubShowUps(nil))

	assert.Equal(t, 0, p.FinalRevenue)
	assert.Equal(t, FlightCapacity*UnderbookingPenaltyPerSeat, p.UnderbookingPenalty)
	assert.Equal(t, -FlightCapacity*UnderbookingPenaltyPerSeat, p.TotalScore)
}

func TestStochasticShowUps_WithinBounds(t *testing.T) {
	counter := StochasticShowUps(rand.New(rand.NewSource(7)))
	b := scoringBooking(0, 15, 4000)
	for i := 0; i < 100; i++ {
		n := counter(&b)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 15)
	}
}
