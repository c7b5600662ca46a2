package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"tripdraft/db"
	"tripdraft/internal/handler"
	"tripdraft/internal/metrics"
	"tripdraft/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type redisQueue struct{}

func (redisQueue) Push(guideID int64) error {
	return db.PushToQueue(db.GenerateQueueKey, strconv.FormatInt(guideID, 10))
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	guideRepo := repository.NewGuideRepository(db.DB)
	guideHandler := handler.NewGuideHandler(guideRepo, redisQueue{})

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.Use(metrics.PrometheusMiddleware())

	r.POST("/guides", guideHandler.CreateGuide)
	r.GET("/guides", guideHandler.GetFeed)
	r.GET("/guides/:id", guideHandler.GetGuide)
	r.GET("/health", guideHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
