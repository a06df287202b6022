package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"flight-risk/models"
	"flight-risk/websocket"
)

// Events pushed to clients.
const (
	EventLobbyUpdate      = "lobby_update"
	EventRoundStarted     = "round_started"
	EventDecisionRecorded = "decision_recorded"
	EventGameOver         = "game_over"
)

// ViewController turns room state into role-differentiated payloads and fans
// them out. Snapshots are taken through the room's accessors; the sends
// themselves happen outside any room lock.
type ViewController struct {
	Conns     *websocket.Registry
	Scheduler *RoundScheduler
}

// EmitLobby pushes the current roster to everyone in the room.
func (vc *ViewController) EmitLobby(room *models.GameRoom) {
	roster := room.Roster()
	status := room.Status()
	vc.Conns.Broadcast(room.RoomID, func(playerID string) models.WSMessage {
		return models.WSMessage{Event: EventLobbyUpdate, Data: gin.H{
			"roomId": room.RoomID,
			"status": status,
			"roster": roster,
			"isHost": playerID == room.HostID,
		}}
	})
}

// EmitRound pushes the current offer to the room and arms its timer, or
// pushes final results when no rounds remain. This is the driver called on
// game start and after every advance.
func (vc *ViewController) EmitRound(room *models.GameRoom) {
	booking, ok := room.CurrentBooking()
	if !ok {
		vc.emitResults(room)
		return
	}

	round := room.CurrentRound()
	splits := booking.DemographicSplits()
	roster := room.Roster()
	log.Info().
		Str("room_id", room.RoomID).
		Int("round", round).
		Int("volume", booking.Volume).
		Msg("round started")

	vc.Conns.Broadcast(room.RoomID, func(playerID string) models.WSMessage {
		return vc.roundView(room, booking, round, roster, splits, playerID)
	})

	vc.Scheduler.Schedule(room, round)
}

// RoundViewFor builds the current round's view for one recipient, used to
// catch up a connection that arrived mid-round.
func (vc *ViewController) RoundViewFor(room *models.GameRoom, playerID string) (models.WSMessage, bool) {
	booking, ok := room.CurrentBooking()
	if !ok {
		return models.WSMessage{}, false
	}
	return vc.roundView(room, booking, room.CurrentRound(), room.Roster(), booking.DemographicSplits(), playerID), true
}

func (vc *ViewController) roundView(room *models.GameRoom, booking models.BookingRequest, round int,
	roster []models.RosterEntry, splits map[string]map[string]int, playerID string) models.WSMessage {
	data := gin.H{
		"roomId":            room.RoomID,
		"round":             round,
		"totalRounds":       room.RoundCount(),
		"booking":           booking,
		"demographicSplits": splits,
		"secondsLeft":       int(vc.Scheduler.Delay / time.Second),
		"isHost":            playerID == room.HostID,
	}
	// The host watches rather than decides and gets the roster to track the
	// table with.
	if playerID == room.HostID {
		data["roster"] = roster
	}
	return models.WSMessage{Event: EventRoundStarted, Data: data}
}

func (vc *ViewController) emitResults(room *models.GameRoom) {
	results := room.Results()
	hostName := room.HostName()
	log.Info().
		Str("room_id", room.RoomID).
		Int("players", len(results)).
		Msg("game over, broadcasting results")

	vc.Conns.Broadcast(room.RoomID, func(playerID string) models.WSMessage {
		return models.WSMessage{Event: EventGameOver, Data: gin.H{
			"roomId":   room.RoomID,
			"players":  results,
			"hostName": hostName,
			"isHost":   playerID == room.HostID,
			"playerId": playerID,
		}}
	})
}

// DecisionConfirmation is the direct reply sent to the player whose decision
// was just recorded.
func DecisionConfirmation(decision models.Decision, bookingID int) models.WSMessage {
	return models.WSMessage{Event: EventDecisionRecorded, Data: gin.H{
		"decision":  decision,
		"bookingId": bookingID,
	}}
}
