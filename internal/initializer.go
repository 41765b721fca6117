package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"routemarket/internal/managers"
	"routemarket/internal/routing"
	"routemarket/internal/store"
)

const (
	port    = ":8080"
	envFile = ".env"

	defaultSweepInterval = time.Minute
)

func Init() {
	err := godotenv.Load(envFile)
	if err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	setLogLevel(logLevel)

	// Initialize the user store and its manager
	userStore := store.NewStore()
	storeMgr := managers.NewStoreManager(userStore)

	// Start the periodic ban expiry sweep, complementing the lazy per-read check
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	go userStore.RunExpirySweeper(sweeperCtx, sweepInterval())

	// Initialize router
	r := routing.InitRouter(storeMgr)
	log.Println("Initialized router")

	// Handle interrupt signal gracefully
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)

		<-c
		log.Println("Server shutting down...")
		stopSweeper()
		os.Exit(0)
	}()

	// Start server on the specified port
	log.Printf("Starting server on port %s...\n", port)
	err = http.ListenAndServe(port, r)
	if err != nil {
		log.Fatal("Error starting server: ", err)
	}
}

// sweepInterval reads the ban sweep interval from the environment, falling
// back to one minute when unset or invalid.
func sweepInterval() time.Duration {
	raw := os.Getenv("BAN_SWEEP_INTERVAL")
	if raw == "" {
		return defaultSweepInterval
	}

	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		log.Warnf("Invalid BAN_SWEEP_INTERVAL %q, using default %s", raw, defaultSweepInterval)
		return defaultSweepInterval
	}
	return interval
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)

	log.SetOutput(os.Stdout)
}
