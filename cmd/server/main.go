package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"webuddhist/internal/auth"
	"webuddhist/internal/config"
	recitationSvc "webuddhist/internal/domain/services/recitation"
	"webuddhist/internal/handler"
	"webuddhist/internal/languages"
	"webuddhist/internal/middleware"
	"webuddhist/internal/repository/postgres"
	postgresRecitation "webuddhist/internal/repository/postgres/recitation"
	"webuddhist/internal/repository/redis"
	serviceRecitation "webuddhist/internal/service/recitation"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bearer tokens are optional; without SUPABASE_URL every request is anonymous
	var jwtVerifier auth.JWTVerifier
	if cfg.SupabaseJWKSURL != "" {
		jwtVerifier, err = auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
	} else {
		logger.Warn("SUPABASE_URL not set, bearer token verification disabled")
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	textRepo := postgresRecitation.NewTextRepository(repoConfig)
	segmentRepo := postgresRecitation.NewSegmentRepository(repoConfig)

	// Redis when configured, otherwise a per-process cache
	var detailsCache recitationSvc.DetailsCache
	if cfg.RedisAddr != "" {
		rdb, err := redis.NewClient(ctx, redis.ClientOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		detailsCache = redis.NewDetailsCache(rdb, cfg.CacheTTL, cfg.CachePrefix, logger)
		logger.Info("details cache: redis", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	} else {
		detailsCache = serviceRecitation.NewMemoryDetailsCache(cfg.CacheTTL, 0, logger)
		logger.Info("details cache: in-process", "ttl", cfg.CacheTTL)
	}

	languageRegistry, err := languages.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize language registry: %v", err)
	}

	segmentStore := serviceRecitation.NewSegmentStore(segmentRepo, logger)
	aggregator := serviceRecitation.NewAggregator(segmentStore, logger)
	recitationService := serviceRecitation.NewRecitationService(
		textRepo,
		aggregator,
		detailsCache,
		languageRegistry,
		serviceRecitation.ServiceConfig{
			CollectionSlug:  cfg.RecitationCollectionSlug,
			DefaultLanguage: cfg.DefaultLanguage,
			ImageBaseURL:    cfg.ImageBaseURL,
		},
		logger,
	)

	recitationHandler := handler.NewRecitationHandler(recitationService, logger)
	healthHandler := handler.NewHealthHandler(pool)
	languagesHandler := handler.NewLanguagesHandler(languageRegistry)

	logger.Info("services initialized")

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.HealthCheck)

	mux.HandleFunc("GET /api/v1/languages", languagesHandler.ListLanguages)
	mux.HandleFunc("GET /api/v1/recitations", recitationHandler.ListRecitations)
	mux.HandleFunc("POST /api/v1/recitations/{text_id}", recitationHandler.GetRecitationDetails)

	// Order: CORS → Recovery → RequestLogger → Auth → Routes
	var h http.Handler = mux
	h = middleware.AuthMiddleware(jwtVerifier, logger)(h)
	h = middleware.RequestLogger(logger)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
