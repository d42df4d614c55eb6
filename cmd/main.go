package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yourplaces/places-server/internal/api/rest"
	"github.com/yourplaces/places-server/internal/config"
	"github.com/yourplaces/places-server/internal/geocode"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
	"github.com/yourplaces/places-server/internal/password"
	"github.com/yourplaces/places-server/internal/repository/postgres"
	"github.com/yourplaces/places-server/internal/server"
	"github.com/yourplaces/places-server/internal/service"
	storage "github.com/yourplaces/places-server/internal/storage/minio"
	"github.com/yourplaces/places-server/internal/token"
)

const bcryptCost = 12

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	txManager := postgres.NewTxManager(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewBcrypt(bcryptCost)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL, cfg.Upload.MaxSizeBytes)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	geocoder := geocode.NewNominatim(cfg.Geocoder.Endpoint, cfg.Geocoder.UserAgent)

	authService := service.NewAuth(userRepo, storageClient, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, logger)
	placeService := service.NewPlace(placeRepo, userRepo, storageClient, geocoder, txManager, logger)

	router := rest.New(authService, userService, placeService, storageClient, tokenManager, logger)
	httpServer := server.NewHTTPServer(router.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
