package main

import (
	"fmt"
	"os"

	"github.com/buildledger/proforma-service/internal/config"
	"github.com/buildledger/proforma-service/internal/db"
	httphandler "github.com/buildledger/proforma-service/internal/http"
	"github.com/buildledger/proforma-service/internal/logger"
	"github.com/buildledger/proforma-service/internal/proforma"
	"github.com/buildledger/proforma-service/internal/repository"
	"github.com/buildledger/proforma-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	projectRepo := repository.NewProjectRepository(database)
	tradeRepo := repository.NewTradeRepository(database)

	engineCfg := proforma.DefaultConfig()
	engineCfg.MaxProjectionMonths = cfg.Projection.MaxMonths
	engineCfg.ConstructionFraction = cfg.Projection.ConstructionFraction
	engine := proforma.NewEngine(engineCfg)

	projectionService := service.NewProjectionService(projectRepo, tradeRepo, engine)

	handler := httphandler.NewHandler(projectionService, log)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting proforma service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
