package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/icislabs/contract-workbench/internal/application"
	appcontracts "github.com/icislabs/contract-workbench/internal/application/contracts"
	"github.com/icislabs/contract-workbench/internal/config"
	"github.com/icislabs/contract-workbench/internal/domain/drafts"
	"github.com/icislabs/contract-workbench/internal/domain/extract"
	memorydb "github.com/icislabs/contract-workbench/internal/infra/db/memory"
	mysqldb "github.com/icislabs/contract-workbench/internal/infra/db/mysql"
	postgresdb "github.com/icislabs/contract-workbench/internal/infra/db/postgres"
	"github.com/icislabs/contract-workbench/internal/infra/extractor"
	"github.com/icislabs/contract-workbench/internal/infra/httpserver"
	minioStore "github.com/icislabs/contract-workbench/internal/infra/storage"
	"github.com/icislabs/contract-workbench/internal/middleware"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// draft store
	var repo drafts.Repository
	var db *sql.DB
	switch cfg.Database.Driver {
	case "mysql":
		db, err = mysqldb.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqldb.NewDraftRepository(db)
	case "postgres":
		db, err = postgresdb.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresdb.NewDraftRepository(db)
	case "memory":
		log.Printf("database.driver=memory: drafts will not survive restarts")
		repo = memorydb.NewDraftRepository()
	default:
		log.Fatalf("unknown database driver: %q", cfg.Database.Driver)
	}

	// document extraction
	ext := extractor.New(cfg.OCR.TesseractBin, cfg.OCR.DefaultLang)
	if !ext.OCRAvailable() {
		log.Printf("tesseract not found: image uploads will fail until it is installed")
	}

	// optional artifact store for uploaded source documents
	var artifacts extract.ArtifactStore
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	svc := &appcontracts.Service{
		Repo:      repo,
		Extractor: ext,
		Artifacts: artifacts,
		Clock:     application.SystemClock{},
	}

	checkers := map[string]middleware.HealthChecker{}
	if db != nil {
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}

	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.NewRateLimiter(60, 10).Middleware)
	if len(cfg.Server.APIKeys) > 0 {
		mux.Use(middleware.APIKeyAuth(cfg.Server.APIKeys))
	}
	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Mount("/api", httpserver.NewRouter(svc, cfg.MaxUploadBytes()))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
