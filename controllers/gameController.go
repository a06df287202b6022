package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"flight-risk/models"
	"flight-risk/registry"
)

const playerCookie = "player_id"

// GameController is the HTTP glue around the game: hosting, joining and the
// cookie-based identity that keeps a player stable per (browser, room) pair.
type GameController struct {
	Rooms *registry.Registry
}

func NewGameController(rooms *registry.Registry) *GameController {
	return &GameController{Rooms: rooms}
}

type hostRequest struct {
	PlayerName string `form:"player_name" json:"playerName" binding:"required"`
}

// HostGame creates a room with a fresh offer sequence and registers the
// caller as its host.
func (gc *GameController) HostGame(c *gin.Context) {
	var req hostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player_name is required"})
		return
	}

	hostID := uuid.New().String()
	hostName := req.PlayerName + " (Host)"
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var room *models.GameRoom
	for {
		room = models.NewGameRoom(
			registry.NewRoomID(),
			hostID,
			hostName,
			models.GenerateBookings(rng),
			models.StochasticShowUps(rng),
		)
		if err := gc.Rooms.Create(room); err == nil {
			break
		}
		// Token collision; mint another.
	}

	setPlayerCookie(c, hostID)
	log.Info().
		Str("room_id", room.RoomID).
		Str("host_id", hostID).
		Msg("room created")
	c.JSON(http.StatusCreated, gin.H{
		"roomId":     room.RoomID,
		"playerId":   hostID,
		"playerName": hostName,
	})
}

type joinRequest struct {
	RoomID     string `form:"room_id" json:"roomId" binding:"required"`
	PlayerName string `form:"player_name" json:"playerName" binding:"required"`
}

// JoinGame checks the room exists before the client navigates to it.
func (gc *GameController) JoinGame(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id and player_name are required"})
		return
	}
	if _, ok := gc.Rooms.Get(req.RoomID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": req.RoomID})
}

// GetGameRoom resolves the caller's identity for a room. A returning cookie
// keeps its player; anyone else gets a fresh id and a collision-free display
// name, and joins the roster.
func (gc *GameController) GetGameRoom(c *gin.Context) {
	room, ok := gc.Rooms.Get(c.Param("room_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	name := c.DefaultQuery("name", "Player")
	playerID, err := c.Cookie(playerCookie)
	if err != nil || !room.HasPlayer(playerID) {
		playerID = uuid.New().String()
		room.AddPlayer(playerID, uniqueName(name, room.Roster()))
		log.Info().
			Str("room_id", room.RoomID).
			Str("player_id", playerID).
			Msg("player joined room")
	}

	setPlayerCookie(c, playerID)
	player, _ := room.PlayerSnapshot(playerID)
	c.JSON(http.StatusOK, gin.H{
		"room": gin.H{
			"roomId":       room.RoomID,
			"status":       room.Status(),
			"currentRound": room.CurrentRound(),
			"totalRounds":  room.RoundCount(),
			"roster":       room.Roster(),
		},
		"player": player,
		"isHost": playerID == room.HostID,
	})
}

// GetRoomStatus is a light polling endpoint for clients between pushes.
func (gc *GameController) GetRoomStatus(c *gin.Context) {
	room, ok := gc.Rooms.Get(c.Param("room_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomId":       room.RoomID,
		"status":       room.Status(),
		"currentRound": room.CurrentRound(),
		"totalRounds":  room.RoundCount(),
		"roster":       room.Roster(),
	})
}

func setPlayerCookie(c *gin.Context, playerID string) {
	c.SetCookie(playerCookie, playerID, 0, "/", "", false, true)
}

// uniqueName suffixes a display name until it collides with nobody in the
// room: "Ana", "Ana#2", "Ana#3", ...
func uniqueName(base string, roster []models.RosterEntry) string {
	taken := make(map[string]bool, len(roster))
	for _, entry := range roster {
		taken[entry.Name] = true
	}
	if !taken[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s#%d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
