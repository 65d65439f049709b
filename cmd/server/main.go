package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coach-courier/internal/adapter"
	"github.com/MKhiriev/coach-courier/internal/config"
	myHTTP "github.com/MKhiriev/coach-courier/internal/handler/http"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/server"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/MKhiriev/coach-courier/internal/worker"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	log := logger.NewLogger("coach-courier")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	tts, err := adapter.NewTTSAdapter(cfg.Adapter.TTS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating tts adapter")
	}

	audio, err := adapter.NewStorageAdapter(cfg.Adapter.ObjectStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage adapter")
	}

	geo, err := adapter.NewGeoAdapter(cfg.Adapter.Geo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geo adapter")
	}

	services := service.NewServices(repos, tts, audio, geo, cfg, log)

	handler := myHTTP.NewHandler(services, cfg.App.Version, log)
	poller := worker.NewPoller(services.ScheduledMessageService, cfg.Workers, log)

	srv, err := server.NewServer(handler, poller, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	if cfg.Driver == "sqlite3" {
		return store.NewConnectSQLite(ctx, cfg, log)
	}
	return store.NewConnectPostgres(ctx, cfg, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
