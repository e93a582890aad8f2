package main

import (
	"log"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/stub"
)

// Runs the local stub of the storefront API so the client packages can be
// developed and demoed without the real backend.
func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	server := stub.New(cfg.JWTSecret, cfg.AccessTokenTTL, logger)

	if err := server.RegisterUser("Demo Shopper", "demo@example.com", "demo-password"); err != nil {
		logger.Fatal("could not seed demo user", zap.Error(err))
	}
	if err := server.RegisterUser("Store Admin", "admin@example.com", "admin-password", "Admin"); err != nil {
		logger.Fatal("could not seed admin user", zap.Error(err))
	}

	if err := server.Run(cfg.StubAddr); err != nil {
		logger.Fatal("stub server stopped", zap.Error(err))
	}
}
