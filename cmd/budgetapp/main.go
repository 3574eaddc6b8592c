package main

import (
	"os"

	"budgetapp/internal/auth"
	"budgetapp/internal/config"
	"budgetapp/internal/httpapi"
	"budgetapp/internal/log"
	"budgetapp/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.New("info", "budgetapp").Error("load config", "error", err)
		os.Exit(1)
	}
	logger := log.New(cfg.LogLevel, "budgetapp")
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(st.DB(), []byte(cfg.JWTSecret))
	api := httpapi.New(st, tokens, logger.WithComponent("http"))

	logger.Info("listening", "port", cfg.Port)
	if err := api.Router().Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
