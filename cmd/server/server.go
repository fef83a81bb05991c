package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/clients/cdn"
	"github.com/pixself/pixself-api/internal/clients/workflow"
	"github.com/pixself/pixself-api/internal/config"
	v1 "github.com/pixself/pixself-api/internal/handlers/api/v1"
	"github.com/pixself/pixself-api/internal/orchestrators/character"
	"github.com/pixself/pixself-api/internal/orchestrators/checkout"
	"github.com/pixself/pixself-api/internal/pkg/clock"
	"github.com/pixself/pixself-api/internal/pkg/idgen"
	redisclient "github.com/pixself/pixself-api/internal/redis"
	"github.com/pixself/pixself-api/internal/render"
	characterdraft "github.com/pixself/pixself-api/internal/repositories/characterdraft"
	discountcode "github.com/pixself/pixself-api/internal/repositories/discountcode"
	orderrepo "github.com/pixself/pixself-api/internal/repositories/order"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  `Start the Pixself Studio API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().String("addr", ":8080", "HTTP listen address")
	serverCmd.Flags().String("redis", "localhost:6379", "Redis endpoint")
	_ = viper.BindPFlag("http_addr", serverCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("redis_endpoint", serverCmd.Flags().Lookup("redis"))

	viper.SetEnvPrefix("PIXSELF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName("pixself")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := slog.Default()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	// Storage
	rdb, err := redisclient.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return err
	}

	var discountRepo discountcode.Repository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		if err := discountcode.EnsureSchema(db); err != nil {
			return err
		}
		discountRepo = discountcode.NewMySQLRepository(db)
	} else {
		logger.Warn("no MySQL DSN configured, discount codes run in-memory")
		discountRepo = discountcode.NewInMemoryRepository()
	}

	// Asset catalog
	var provider assets.ManifestProvider
	if cfg.ManifestURL != "" {
		provider = assets.NewHTTPManifestProvider(cfg.ManifestURL, 0)
	} else {
		logger.Warn("no manifest URL configured, using built-in fallback catalog")
		provider = assets.NewStaticManifestProvider(assets.FallbackManifest())
	}

	catalog, err := assets.NewCatalog(&assets.CatalogConfig{
		Provider: provider,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	if err := catalog.Load(ctx); err != nil {
		return err
	}

	resolver := assets.NewResolver(catalog)
	prober := assets.NewProber(&assets.ProberConfig{BaseURL: cfg.AssetBaseURL})

	compositor, err := render.NewCompositor(&render.CompositorConfig{
		Resolver: resolver,
		Source:   render.NewHTTPSource(cfg.AssetBaseURL, 0),
		Size:     cfg.CanvasSize,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	// Clients
	var uploader cdn.Uploader
	if cfg.CloudinaryURL != "" {
		uploader, err = cdn.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			return err
		}
	} else {
		logger.Warn("no Cloudinary URL configured, orders will carry no image URL")
	}

	var workflowClient workflow.Client
	if cfg.WebhookURL != "" {
		workflowClient, err = workflow.NewHTTPClient(&workflow.Config{WebhookURL: cfg.WebhookURL})
		if err != nil {
			return err
		}
	} else {
		logger.Warn("no webhook URL configured, order automation disabled")
		workflowClient = workflow.Noop()
	}

	// Orchestrators
	characterService, err := character.NewOrchestrator(&character.Config{
		Catalog:     catalog,
		Resolver:    resolver,
		Prober:      prober,
		Compositor:  compositor,
		DraftRepo:   characterdraft.NewRedisRepository(rdb, time.Duration(cfg.DraftTTLHours)*time.Hour),
		IDGenerator: idgen.NewUUID("char"),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	checkoutService, err := checkout.NewOrchestrator(&checkout.Config{
		DiscountRepo: discountRepo,
		OrderRepo:    orderrepo.NewRedisRepository(rdb, clock.New()),
		Workflow:     workflowClient,
		Uploader:     uploader,
		IDGenerator:  idgen.NewUUID("order"),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharacterService: characterService,
		CheckoutService:  checkoutService,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			logger.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}
