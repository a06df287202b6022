package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-risk/models"
	"flight-risk/registry"
)

func setupGameRouter() (*gin.Engine, *registry.Registry) {
	gin.SetMode(gin.TestMode)
	rooms := registry.New()
	gc := NewGameController(rooms)
	r := gin.New()
	r.POST("/host", gc.HostGame)
	r.POST("/join", gc.JoinGame)
	r.GET("/game/:room_id", gc.GetGameRoom)
	r.GET("/api/rooms/:room_id", gc.GetRoomStatus)
	return r, rooms
}

func postForm(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func playerCookieValue(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == playerCookie {
			return c.Value
		}
	}
	return ""
}

func TestHostGame_CreatesRoomAndIdentity(t *testing.T) {
	r, rooms := setupGameRouter()

	w := postForm(r, "/host", "player_name=Ana")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		RoomID     string `json:"roomId"`
		PlayerID   string `json:"playerId"`
		PlayerName string `json:"playerName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ana (Host)", resp.PlayerName)

	room, ok := rooms.Get(resp.RoomID)
	require.True(t, ok)
	assert.Equal(t, resp.PlayerID, room.HostID)
	assert.Equal(t, models.StatusWaiting, room.Status())
	assert.Equal(t, models.TotalBookingsPerGame, room.RoundCount())
	assert.Equal(t, resp.PlayerID, playerCookieValue(w))
}

func TestHostGame_RequiresName(t *testing.T) {
	r, _ := setupGameRouter()
	w := postForm(r, "/host", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinGame_UnknownRoom(t *testing.T) {
	r, _ := setupGameRouter()
	w := postForm(r, "/join", "room_id=nope&player_name=Ben")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinGame_KnownRoom(t *testing.T) {
	r, rooms := setupGameRouter()
	room := models.NewGameRoom("abc123", "host-id", "Ana (Host)", flowBookings(2), everyoneShows)
	require.NoError(t, rooms.Create(room))

	w := postForm(r, "/join", "room_id=abc123&player_name=Ben")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetGameRoom_MintsIdentityAndUniqueNames(t *testing.T) {
	r, rooms := setupGameRouter()
	room := models.NewGameRoom("abc123", "host-id", "Ana (Host)", flowBookings(2), everyoneShows)
	require.NoError(t, rooms.Create(room))

	// First visitor named Ben joins as Ben.
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/game/abc123?name=Ben", nil))
	require.Equal(t, http.StatusOK, w1.Code)
	firstID := playerCookieValue(w1)
	require.NotEmpty(t, firstID)
	assert.True(t, room.HasPlayer(firstID))

	// A second cookie-less Ben gets a suffixed name.
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/game/abc123?name=Ben", nil))
	require.Equal(t, http.StatusOK, w2.Code)
	require.NotEqual(t, firstID, playerCookieValue(w2))

	names := make([]string, 0)
	for _, entry := range room.Roster() {
		names = append(names, entry.Name)
	}
	assert.Contains(t, names, "Ben")
	assert.Contains(t, names, "Ben#2")

	// A returning cookie keeps its player instead of minting another.
	w3 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/game/abc123?name=Ben", nil)
	req.AddCookie(&http.Cookie{Name: playerCookie, Value: firstID})
	r.ServeHTTP(w3, req)
	require.Equal(t, http.StatusOK, w3.Code)
	assert.Equal(t, firstID, playerCookieValue(w3))
	assert.Len(t, room.Roster(), 3)
}

func TestGetGameRoom_UnknownRoom(t *testing.T) {
	r, _ := setupGameRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/game/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRoomStatus(t *testing.T) {
	r, rooms := setupGameRouter()
	room := models.NewGameRoom("abc123", "host-id", "Ana (Host)", flowBookings(2), everyoneShows)
	require.NoError(t, rooms.Create(room))
	room.Start()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/abc123", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status       string `json:"status"`
		CurrentRound int    `json:"currentRound"`
		TotalRounds  int    `json:"totalRounds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.StatusInProgress), resp.Status)
	assert.Equal(t, 0, resp.CurrentRound)
	assert.Equal(t, 2, resp.TotalRounds)
}

func TestUniqueName(t *testing.T) {
	roster := []models.RosterEntry{
		{Name: "Ana (Host)"},
		{Name: "Ben"},
		{Name: "Ben#2"},
	}
	assert.Equal(t, "Cleo", uniqueName("Cleo", roster))
	assert.Equal(t, "Ben#3", uniqueName("Ben", roster))
}
