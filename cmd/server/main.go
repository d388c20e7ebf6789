package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"towerboard/internal/common"
	"towerboard/internal/config"
	"towerboard/internal/eventlog"
	"towerboard/internal/logging"
	"towerboard/internal/metrics"
	"towerboard/internal/routes"
	"towerboard/internal/strips"
	"towerboard/internal/tracking"
	"towerboard/internal/ws"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.Server.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Towerboard starting up",
		"environment", cfg.Server.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewRegistry()

	// Event log (audit trail for every board mutation)
	eventDB, err := eventlog.Open(cfg.EventLog.Driver, cfg.EventLog.DSN)
	if err != nil {
		logging.Error("Failed to open event log", "error", err.Error())
		log.Fatalf("❌ Failed to open event log: %v", err)
	}
	eventStore := eventlog.NewStore(eventDB)
	eventSink := eventlog.NewSink(eventStore)
	defer eventSink.Close()
	logging.Info("Event log connected", "driver", cfg.EventLog.Driver)

	// Upstream response cache: Redis when configured, in-memory otherwise.
	var cache common.CacheInterface
	if cfg.Redis.Enabled {
		redisCache, err := common.NewRedisCacheService(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password)
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
			cache = common.NewCacheService(60, 120)
		} else {
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(60, 120)
	}
	defer cache.Close()

	// Strip board
	boardCfg := strips.Config{
		ExpirySeconds: cfg.Strips.ExpirySeconds,
		Debounce:      cfg.Debounce(),
		CancelOnExit:  cfg.CancelOnExit(),
	}
	board := strips.NewBoard(boardCfg, strips.SystemClock(), eventSink, metrics.NewBoardSink(metricsReg))

	if cfg.Strips.SeedFile != "" {
		seed, err := strips.LoadSeed(cfg.Strips.SeedFile)
		if err != nil {
			log.Fatalf("❌ Failed to load seed file: %v", err)
		}
		if err := board.Seed(seed); err != nil {
			log.Fatalf("❌ Failed to seed board: %v", err)
		}
		logging.Info("Board seeded", "strips", board.Len(), "file", cfg.Strips.SeedFile)
	}

	// Live traffic
	tracker := tracking.NewService(tracking.NewADSBClient(cfg.Tracking.BaseURL), cache, metricsReg, cfg.Tracking.CacheSeconds)

	// Websocket fan-out
	hub := ws.NewHub(metricsReg)
	go hub.Run()
	monitor := ws.NewMonitor(hub, tracker, cfg.Tracking.WatchAirport, cfg.Tracking.WatchRadius, cfg.PollInterval())
	monitor.AttachBoard(board)

	upSince := time.Now()
	router := routes.RegisterRoutes(metricsReg, board, tracker, eventStore, eventDB, hub, upSince)

	// Metrics endpoint lives outside the Chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := monitor.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
	logging.Info("Server stopped")
}
