package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/config"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/jobs"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/pricefeed"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/handlers"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/middleware"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/jwt"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newFeedReader = func(rpcURL string) (usecases.PriceFeedReader, error) {
		return pricefeed.NewClientFactory().GetClient(rpcURL)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	platformRepo := repositories.NewPlatformConfigRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	collectionRepo := repositories.NewCollectionRepository(db)
	poolRepo := repositories.NewLiquidityPoolRepository(db)
	nftRepo := repositories.NewNftRepository(db)
	listingRepo := repositories.NewNftListingRepository(db)
	escrowRepo := repositories.NewTokenEscrowRepository(db)
	traitTypeRepo := repositories.NewTraitTypeRepository(db)
	traitConfigRepo := repositories.NewCollectionTraitConfigRepository(db)
	nftTraitsRepo := repositories.NewNftTraitsRepository(db)
	fusionRepo := repositories.NewFusionConfigRepository(db)
	ledger := repositories.NewTokenLedger(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize oracle feed reader
	feedReader, err := newFeedReader(cfg.Oracle.FeedRPC)
	if err != nil {
		return fmt.Errorf("failed to initialize oracle feed client: %w", err)
	}

	clock := clockwork.NewRealClock()

	// Initialize usecases
	adminUsecase := usecases.NewAdminUsecase(platformRepo, projectRepo, collectionRepo, fusionRepo, clock)
	oracleUsecase := usecases.NewOracleUsecase(projectRepo, poolRepo, feedReader, clock)
	poolUsecase := usecases.NewPoolUsecase(platformRepo, projectRepo, poolRepo, ledger, uow, clock)
	swapUsecase := usecases.NewSwapUsecase(platformRepo, projectRepo, collectionRepo, poolRepo, nftRepo, ledger, uow, clock)
	escrowUsecase := usecases.NewEscrowUsecase(platformRepo, projectRepo, collectionRepo, nftRepo, escrowRepo, ledger, uow, clock)
	traitUsecase := usecases.NewTraitUsecase(projectRepo, collectionRepo, traitTypeRepo, traitConfigRepo, clock)
	mintUsecase := usecases.NewMintUsecase(collectionRepo, traitTypeRepo, traitConfigRepo, nftRepo, nftTraitsRepo, fusionRepo, uow, clock)
	listingUsecase := usecases.NewListingUsecase(nftRepo, listingRepo, clock)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	oracleHandler := handlers.NewOracleHandler(oracleUsecase)
	poolHandler := handlers.NewPoolHandler(poolUsecase)
	swapHandler := handlers.NewSwapHandler(swapUsecase)
	escrowHandler := handlers.NewEscrowHandler(escrowUsecase)
	nftHandler := handlers.NewNftHandler(mintUsecase, nftRepo)
	listingHandler := handlers.NewListingHandler(listingUsecase)
	traitHandler := handlers.NewTraitHandler(traitUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inactivityJob := jobs.NewPoolInactivityJob(poolUsecase, projectRepo, cfg.Platform.Authority, cfg.Jobs.InactivitySweepInterval)
	go inactivityJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		adminHandler:   adminHandler,
		oracleHandler:  oracleHandler,
		poolHandler:    poolHandler,
		swapHandler:    swapHandler,
		escrowHandler:  escrowHandler,
		nftHandler:     nftHandler,
		listingHandler: listingHandler,
		traitHandler:   traitHandler,
		authMiddleware: authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		inactivityJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 NFT Fusion Marketplace starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
