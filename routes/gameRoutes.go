package routes

import (
	"github.com/gin-gonic/gin"

	"flight-risk/controllers"
)

func GameRoutes(r *gin.Engine, gc *controllers.GameController) {
	r.POST("/host", gc.HostGame)
	r.POST("/join", gc.JoinGame)
	r.GET("/game/:room_id", gc.GetGameRoom)
	r.GET("/api/rooms/:room_id", gc.GetRoomStatus)
}
