package controllers

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"flight-risk/models"
)

// RoundScheduler arms one-shot timers that end rounds nobody closed in time.
// There is no cancellation bookkeeping: every trigger re-checks, under the
// room lock, that the round it captured is still current, and stale triggers
// die silently.
type RoundScheduler struct {
	Clock clockwork.Clock
	Delay time.Duration

	// OnAdvance runs after a trigger successfully ends its round; the view
	// layer uses it to push the next round (or the results) to the room.
	OnAdvance func(room *models.GameRoom)
}

func NewRoundScheduler(clock clockwork.Clock, delay time.Duration) *RoundScheduler {
	return &RoundScheduler{Clock: clock, Delay: delay}
}

// Schedule arms the timer for (room, round). The trigger body runs on its
// own goroutine: OnAdvance ends up re-arming the next round's timer, which
// must not happen inside the clock's callback.
func (s *RoundScheduler) Schedule(room *models.GameRoom, round int) {
	s.Clock.AfterFunc(s.Delay, func() {
		go s.fire(room, round)
	})
}

func (s *RoundScheduler) fire(room *models.GameRoom, round int) {
	if !room.AdvanceFrom(round) {
		log.Debug().
			Str("room_id", room.RoomID).
			Int("round", round).
			Msg("stale round trigger ignored")
		return
	}
	log.Info().
		Str("room_id", room.RoomID).
		Int("round", round).
		Msg("round timed out, advancing")
	if s.OnAdvance != nil {
		s.OnAdvance(room)
	}
}
