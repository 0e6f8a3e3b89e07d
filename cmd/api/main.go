package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/braider-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/braider-booking/internal/db"
	"github.com/BruksfildServices01/braider-booking/internal/events"
	"github.com/BruksfildServices01/braider-booking/internal/infra/cache"
	"github.com/BruksfildServices01/braider-booking/internal/infra/memory"
	"github.com/BruksfildServices01/braider-booking/internal/infra/repository"
	"github.com/BruksfildServices01/braider-booking/internal/jobs"
	"github.com/BruksfildServices01/braider-booking/internal/logger"
	"github.com/BruksfildServices01/braider-booking/internal/notify"
	"github.com/BruksfildServices01/braider-booking/internal/routes"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/braider-booking/internal/usecase/booking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	clock := timezone.SystemClock(cfg.Timezone)

	// ======================================================
	// 🔧 STORE
	// ======================================================
	deps := routes.Deps{
		Config: cfg,
		Log:    log,
		Clock:  clock,
		Cache:  ucBooking.NoCache{},
	}

	var sinks []events.Sink

	switch cfg.StoreDriver {
	case config.DriverMemory:
		store := memory.New()
		deps.Catalog, deps.Slots, deps.Bookings = store, store, store
		log.Warn("using in-memory store; data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg, log)
		if err != nil {
			log.Fatal("database", zap.Error(err))
		}
		deps.Catalog = repository.NewCatalogGormRepository(db)
		deps.Slots = repository.NewSlotGormRepository(db)
		deps.Bookings = repository.NewBookingGormRepository(db)
		sinks = append(sinks, events.NewAuditSink(db))

		if cfg.AvailabilityCacheTTL > 0 {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisCacheDB,
			})
			defer rdb.Close()

			avail := cache.NewAvailability(deps.Slots, rdb, cfg.AvailabilityCacheTTL, log)
			deps.Slots = avail
			deps.Cache = avail
		}
	}

	// ======================================================
	// 📣 EVENTS
	// ======================================================
	if cfg.NotifyEnabled {
		client := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		})
		defer client.Close()
		sinks = append(sinks, notify.NewEnqueuer(client))
	}

	dispatcher := events.NewDispatcher(log, events.DefaultQueueSize, sinks...)
	deps.Events = dispatcher

	// ======================================================
	// ⏱️ HOLD EXPIRY
	// ======================================================
	var holdJob *jobs.HoldExpiry
	if cfg.BookingHoldTTL > 0 {
		transition := ucBooking.NewTransition(deps.Bookings, dispatcher, deps.Cache, clock)
		expire := ucBooking.NewExpirePendingHolds(deps.Bookings, transition, cfg.BookingHoldTTL, clock, log)

		holdJob, err = jobs.NewHoldExpiry(cfg.HoldSweepSpec, expire, log)
		if err != nil {
			log.Fatal("hold expiry", zap.Error(err))
		}
		holdJob.Start()
		log.Info("hold expiry enabled", zap.Duration("ttl", cfg.BookingHoldTTL))
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if holdJob != nil {
		<-holdJob.Stop().Done()
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn("pending events not flushed", zap.Error(err))
	}

	log.Info("server stopped")
}
