package main

import (
	"fmt"
	"os"

	"marketplace/configs"
	"marketplace/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := configs.NewLogger(cfg)
	zerolog.DefaultContextLogger = &log

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(db, log); err != nil {
			log.Fatal().Err(err).Msg("seed demo failed")
		}
	}

	// HTTP
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
