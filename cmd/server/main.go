package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/parishtools/attendance-register/internal/config"
	"github.com/parishtools/attendance-register/internal/database"
	"github.com/parishtools/attendance-register/internal/handler"
	"github.com/parishtools/attendance-register/internal/middleware"
	"github.com/parishtools/attendance-register/internal/queue"
	"github.com/parishtools/attendance-register/internal/repository"
	"github.com/parishtools/attendance-register/internal/router"
	"github.com/parishtools/attendance-register/internal/utils"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Hash the PIN once so the plain secret never sticks around.
	pinHash, err := utils.HashPIN(cfg.AdminPIN, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash admin pin: %v", err)
	}

	// Select the store backend.  MySQL gets its schema ensured at boot.
	var store repository.Store
	switch cfg.StoreBackend {
	case config.StoreMySQL:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		mysqlStore := repository.NewMySQLStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mysqlStore.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatalf("ensure schema: %v", err)
		}
		cancel()
		store = mysqlStore
	default:
		store = repository.NewMemoryStore()
	}

	// Optional Redis: ledger read cache plus unlock rate limiting.  A
	// missing Redis disables both and the service runs uncached.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	if cacheCfg.Enabled {
		store = repository.NewCachedStore(store, rdb, cacheCfg.TTL)
	}
	var unlockLimiter echo.MiddlewareFunc
	if rlCfg := config.LoadRateLimitConfig(); rlCfg.Enabled && rdb != nil {
		unlockLimiter = middleware.NewTokenBucket(rlCfg, rdb)
	}

	// Audit trail consumer; runs its own reconnect loop.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	router.Register(e, router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, pinHash),
		Attendance: handler.NewAttendanceHandler(store),
		Report:     handler.NewReportHandler(store),
		Roster:     handler.NewRosterHandler(store),
		CSV:        handler.NewCSVHandler(store),
	}, cfg.JWTSecret, unlockLimiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
