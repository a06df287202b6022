package models

import (
	"sort"
	"sync"
)

type GameStatus string

const (
	StatusWaiting    GameStatus = "WAITING"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinished   GameStatus = "FINISHED"
)

// AnyRound marks a decision that does not name the round it targets; it
// applies to whichever round is current when the room lock is taken.
const AnyRound = -1

// GameRoom is the state container for one game. Every mutation runs under
// the room's own lock: connection handlers and round timers both write here,
// and two rooms never contend with each other.
type GameRoom struct {
	RoomID string
	HostID string

	mu           sync.Mutex
	players      map[string]*Player
	bookings     []BookingRequest
	currentRound int
	status       GameStatus
	showUps      ShowUpCounter
}

// NewGameRoom creates a room in WAITING with the host registered as its
// first player.
func NewGameRoom(roomID, hostID, hostName string, bookings []BookingRequest, showUps ShowUpCounter) *GameRoom {
	r := &GameRoom{
		RoomID:   roomID,
		HostID:   hostID,
		players:  make(map[string]*Player),
		bookings: bookings,
		status:   StatusWaiting,
		showUps:  showUps,
	}
	r.players[hostID] = NewPlayer(hostID, hostName)
	return r
}

// AddPlayer registers a player. Re-adding a known id is a no-op.
func (r *GameRoom) AddPlayer(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		r.players[id] = NewPlayer(id, name)
	}
}

func (r *GameRoom) HasPlayer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[id]
	return ok
}

// Start moves the room from WAITING to IN_PROGRESS at round 0. Duplicate
// start signals are no-ops.
func (r *GameRoom) Start() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusWaiting {
		return false
	}
	r.status = StatusInProgress
	r.currentRound = 0
	return true
}

func (r *GameRoom) Status() GameStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *GameRoom) CurrentRound() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentRound
}

func (r *GameRoom) RoundCount() int {
	return len(r.bookings)
}

// CurrentBooking returns a copy of the offer for the current round, if the
// game is in progress and rounds remain.
func (r *GameRoom) CurrentBooking() (BookingRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.currentBookingLocked()
	if b == nil {
		return BookingRequest{}, false
	}
	return *b, true
}

func (r *GameRoom) currentBookingLocked() *BookingRequest {
	if r.status != StatusInProgress {
		return nil
	}
	if r.currentRound < 0 || r.currentRound >= len(r.bookings) {
		return nil
	}
	return &r.bookings[r.currentRound]
}

// Accept records acceptance of the current offer. round is the round the
// caller was looking at (AnyRound to skip the check); a decision aimed at a
// round that has already advanced is ignored. Returns the decided booking id.
func (r *GameRoom) Accept(playerID string, round int) (int, bool) {
	return r.decide(playerID, round, DecisionAccepted)
}

// Reject records rejection of the current offer. Same staleness and
// duplicate rules as Accept.
func (r *GameRoom) Reject(playerID string, round int) (int, bool) {
	return r.decide(playerID, round, DecisionRejected)
}

func (r *GameRoom) decide(playerID string, round int, d Decision) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if round != AnyRound && round != r.currentRound {
		return 0, false
	}
	booking := r.currentBookingLocked()
	if booking == nil {
		return 0, false
	}
	player, ok := r.players[playerID]
	if !ok || playerID == r.HostID {
		return 0, false
	}
	// First writer wins; a repeated accept must not inflate the accepted list.
	if _, decided := player.ChoiceHistory[booking.BookingID]; decided {
		return 0, false
	}
	if d == DecisionAccepted {
		player.AcceptedBookings = append(player.AcceptedBookings, *booking)
	}
	player.ChoiceHistory[booking.BookingID] = d
	return booking.BookingID, true
}

// AdvanceFrom ends round `round` if it is still current: undecided non-host
// players get an automatic rejection, then the round index moves on. When the
// last round ends the room finishes and every player is scored, once. A stale
// round index (a timer that lost the race) is a silent no-op.
func (r *GameRoom) AdvanceFrom(round int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusInProgress || r.currentRound != round {
		return false
	}
	r.advanceLocked()
	return true
}

// Advance ends whichever round is current. No-op once the game is over.
func (r *GameRoom) Advance() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusInProgress {
		return false
	}
	r.advanceLocked()
	return true
}

func (r *GameRoom) advanceLocked() {
	if booking := r.currentBookingLocked(); booking != nil {
		for _, p := range r.players {
			if p.PlayerID == r.HostID {
				continue
			}
			if _, decided := p.ChoiceHistory[booking.BookingID]; !decided {
				p.ChoiceHistory[booking.BookingID] = DecisionRejected
			}
		}
	}
	r.currentRound++
	if r.currentRound >= len(r.bookings) {
		r.status = StatusFinished
		for _, p := range r.players {
			scorePlayer(p, r.showUps)
		}
	}
}

type RosterEntry struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	IsHost   bool   `json:"isHost"`
}

// Roster lists everyone in the room, host first, the rest by name.
func (r *GameRoom) Roster() []RosterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	roster := make([]RosterEntry, 0, len(r.players))
	for _, p := range r.players {
		roster = append(roster, RosterEntry{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			IsHost:   p.PlayerID == r.HostID,
		})
	}
	sort.Slice(roster, func(i, j int) bool {
		if roster[i].IsHost != roster[j].IsHost {
			return roster[i].IsHost
		}
		return roster[i].Name < roster[j].Name
	})
	return roster
}

// Results returns scored players ranked by total score, host excluded.
// Entries are deep copies.
func (r *GameRoom) Results() []Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		if p.PlayerID == r.HostID {
			continue
		}
		results = append(results, p.clone())
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return results[i].Name < results[j].Name
	})
	return results
}

func (r *GameRoom) HostName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if host, ok := r.players[r.HostID]; ok {
		return host.Name
	}
	return ""
}

// PlayerSnapshot returns a deep copy of one player's state.
func (r *GameRoom) PlayerSnapshot(id string) (Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return Player{}, false
	}
	return p.clone(), true
}
