package routes

import (
	"github.com/gin-gonic/gin"

	"flight-risk/controllers"
)

func WebSocketRoutes(r *gin.Engine, wc *controllers.WebSocketController) {
	r.GET("/ws/:room_id/:player_id", wc.ServeWS)
}
