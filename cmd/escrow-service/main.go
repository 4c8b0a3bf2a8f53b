package main

import (
	"fmt"
	"log"

	httpdelivery "escrow-deal-service/internal/delivery/http"
	"escrow-deal-service/internal/delivery/http/handlers"

	"escrow-deal-service/internal/app/background"
	"escrow-deal-service/internal/app/setup"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Log.Sync()
	defer deps.Publisher.Close()

	usecases := setup.InitializeUsecases(deps)

	tasks := background.NewBackgroundTasks(usecases.Ledger, deps.Log)
	if err := tasks.StartAll(); err != nil {
		deps.Log.Fatal("failed to start background tasks", zap.Error(err))
	}
	defer tasks.Stop()

	adminHandler := handlers.NewAdminHandler(
		deps.Repositories.DealRepo,
		deps.Repositories.StatsRepo,
		deps.Repositories.SettingsRepo,
		deps.Audit,
		deps.Log,
	)
	router := httpdelivery.NewRouter(adminHandler, deps.Config.Admin.APIToken)

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	deps.Log.Info("http server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		deps.Log.Fatal("http server failed", zap.Error(err))
	}
}
