package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reviewrelay/internal/config"
	"reviewrelay/internal/middleware"
	"reviewrelay/internal/modules/health"
	"reviewrelay/internal/modules/proxy"
	"reviewrelay/internal/modules/review"
	"reviewrelay/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	reviewHandler := review.NewHandler(review.NewService(st, cfg.ReviewsKey))
	proxyHandler := proxy.NewHandler(proxy.NewService(cfg))
	healthHandler := health.NewHandler(cfg)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	healthHandler.RegisterRoutes(r)
	reviewHandler.RegisterRoutes(r)
	r.NoRoute(proxyHandler.Fallback)

	log.Printf("reviewrelay listening on :%s (upstream %s, model %s)",
		cfg.Port, cfg.UpstreamURL, cfg.DefaultModel)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
