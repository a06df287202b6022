package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"flight-risk/controllers"
	"flight-risk/registry"
	"flight-risk/routes"
	"flight-risk/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	roundSeconds, err := strconv.Atoi(getEnv("ROUND_SECONDS", "60"))
	if err != nil || roundSeconds <= 0 {
		roundSeconds = 60
	}

	rooms := registry.New()
	conns := websocket.NewRegistry()
	views := &controllers.ViewController{Conns: conns}
	scheduler := controllers.NewRoundScheduler(clockwork.NewRealClock(), time.Duration(roundSeconds)*time.Second)
	scheduler.OnAdvance = views.EmitRound
	views.Scheduler = scheduler

	gc := controllers.NewGameController(rooms)
	wc := controllers.NewWebSocketController(rooms, conns, views)

	r := gin.Default()
	routes.GameRoutes(r, gc)
	routes.WebSocketRoutes(r, wc)

	port := getEnv("PORT", "5000")
	log.Info().
		Str("port", port).
		Int("round_seconds", roundSeconds).
		Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
