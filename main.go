package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"token-analytics-system/handlers"
	"token-analytics-system/middleware"
	"token-analytics-system/models"
	"token-analytics-system/services"
	"token-analytics-system/utils"
	"token-analytics-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{})

	app.Use(middleware.RequestIDMiddleware())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,OPTIONS,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With, X-Request-ID",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Registry storage: Postgres when DATABASE_URL is set, process memory
	// otherwise (state resets on restart, like the original prototype).
	var store services.RegistryStore
	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&models.EarlyAccessUser{}); err != nil {
			log.Fatal("failed to migrate database:", err)
		}
		store = services.NewGormRegistryStore(db)
		log.Println("✅ Registry backed by Postgres")
	} else {
		store = services.NewMemoryRegistryStore()
		log.Println("⚠️  DATABASE_URL not set, registry kept in process memory")
	}

	r2Ready, err := utils.InitR2()
	if err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	registryService := services.NewRegistryService(store)

	cacheTTL := 60 * time.Second
	if raw := os.Getenv("SNAPSHOT_CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal("invalid SNAPSHOT_CACHE_TTL:", err)
		}
		cacheTTL = parsed
	}

	marketService := services.NewMarketService(
		services.NewCoinGeckoClient(os.Getenv("COINGECKO_URL")),
		services.NewDexScreenerClient(os.Getenv("DEXSCREENER_URL")),
		cacheTTL,
	)
	marketService.StartSnapshotScheduler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Periodic registry backups need both R2 and an interval
	if raw := os.Getenv("EXPORT_INTERVAL"); raw != "" && r2Ready {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal("invalid EXPORT_INTERVAL:", err)
		}
		go workers.PollRegistryExports(ctx, store, interval)
	}

	handlers.SetupWalletRoutes(app, registryService)
	handlers.SetupTokenRoutes(app, marketService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	if cacheTTL > 0 {
		log.Printf("✅ Trending snapshot cache enabled (TTL %s)", cacheTTL)
	}
	if r2Ready {
		log.Println("✅ R2 export storage configured")
	}
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
