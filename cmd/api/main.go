package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"property-risk/internal/api/handlers"
	"property-risk/internal/api/middleware"
	"property-risk/internal/config"
	"property-risk/internal/montecarlo"
	"property-risk/internal/store"
	"property-risk/pkg/logger"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// .env is optional; environment always wins for PORT/ENV.
	_ = godotenv.Load()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if env := os.Getenv("API_ENV"); env != "" {
		cfg.Server.Env = env
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	simDefaults, err := cfg.SimulationDefaults()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid simulation defaults")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler())

	engine := montecarlo.New()
	runs := store.New(time.Hour, 100)

	analysisHandler := handlers.NewAnalysisHandler()
	simulationHandler := handlers.NewSimulationHandler(engine, simDefaults, runs)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analysisHandler.Analyze)
		api.POST("/sensitivity", analysisHandler.Sensitivity)

		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/simulate/scenarios", simulationHandler.Scenarios)
		api.GET("/simulations/:id/trials", simulationHandler.Trials)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
