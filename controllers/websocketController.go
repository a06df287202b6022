package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"flight-risk/models"
	"flight-risk/registry"
	"flight-risk/websocket"
)

// WebSocketController serves the per-player game connections and dispatches
// their actions into the room. Each connection gets its own read goroutine;
// nothing short of a transport disconnect ends it.
type WebSocketController struct {
	Rooms *registry.Registry
	Conns *websocket.Registry
	Views *ViewController
}

func NewWebSocketController(rooms *registry.Registry, conns *websocket.Registry, views *ViewController) *WebSocketController {
	return &WebSocketController{Rooms: rooms, Conns: conns, Views: views}
}

// ServeWS upgrades /ws/:room_id/:player_id and runs the connection's read
// loop until the client goes away.
func (wc *WebSocketController) ServeWS(c *gin.Context) {
	roomID := c.Param("room_id")
	playerID := c.Param("player_id")

	room, ok := wc.Rooms.Get(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := websocket.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(playerID, conn)
	wc.Conns.Register(roomID, client)
	go client.WritePump()

	log.Info().
		Str("room_id", roomID).
		Str("player_id", playerID).
		Msg("websocket connected")
	wc.Views.EmitLobby(room)

	// Catch a mid-round joiner up on the offer everyone else is deciding.
	if view, ok := wc.Views.RoundViewFor(room, playerID); ok {
		client.Deliver(view)
	}

	wc.readLoop(room, client)
}

func (wc *WebSocketController) readLoop(room *models.GameRoom, client *websocket.Client) {
	defer func() {
		wc.Conns.Unregister(room.RoomID, client)
		client.Conn.Close()
		log.Info().
			Str("room_id", room.RoomID).
			Str("player_id", client.PlayerID).
			Msg("websocket disconnected")
		wc.Views.EmitLobby(room)
	}()

	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := models.ParseActionMessage(data)
		if err != nil {
			log.Debug().Err(err).Str("player_id", client.PlayerID).Msg("unparseable message ignored")
			continue
		}
		wc.dispatch(room, client, msg)
	}
}

func (wc *WebSocketController) dispatch(room *models.GameRoom, client *websocket.Client, msg models.ActionMessage) {
	switch msg.Kind() {
	case models.ActionStartGame:
		if client.PlayerID != room.HostID {
			log.Debug().Str("player_id", client.PlayerID).Msg("start_game from non-host ignored")
			return
		}
		if room.Start() {
			wc.Views.EmitRound(room)
		}

	case models.ActionAcceptBooking:
		if bookingID, ok := room.Accept(client.PlayerID, msg.TargetRound()); ok {
			client.Deliver(DecisionConfirmation(models.DecisionAccepted, bookingID))
		}

	case models.ActionRejectBooking:
		if bookingID, ok := room.Reject(client.PlayerID, msg.TargetRound()); ok {
			client.Deliver(DecisionConfirmation(models.DecisionRejected, bookingID))
		}

	default:
		log.Debug().
			Str("player_id", client.PlayerID).
			Str("action", msg.Action).
			Msg("unrecognized action ignored")
	}
}
