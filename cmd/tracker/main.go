package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/auth"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/cli"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/remote"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage/boltdb"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage/sqlite"
	syncpkg "github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("TRACKER_SERVER", "http://localhost:8080"), "Sheet gateway URL")
	dbPath := flag.String("db", envOr("TRACKER_DB", "tracker.db"), "Path to local SQLite database")
	statePath := flag.String("state", envOr("TRACKER_STATE", "tracker-state.db"), "Path to sync state database")
	syncInterval := flag.Duration("sync-interval", 5*time.Minute, "Interval between scheduled sync cycles")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()

	// Локальная база записей
	recordStore, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := recordStore.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// База состояния синхронизации: журнал изменений, чекпоинты, очередь
	stateStore, err := boltdb.New(ctx, *statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := stateStore.Close(); err != nil {
			logger.Error("failed to close state database", "error", err)
		}
	}()

	// Клиент и auth-сервис ссылаются друг на друга: клиент берет токен у
	// сервиса, сервис ходит за токенами через клиент
	var authService auth.Service
	remoteClient := remote.NewHTTPClient(*serverURL, func(ctx context.Context) (string, error) {
		return authService.AccessToken(ctx)
	})
	authService = auth.NewService(remoteClient, stateStore, logger)

	checkpoints := stateStore.Checkpoints()

	clock := syncpkg.RealClock{}
	tracker := syncpkg.NewTracker(stateStore.Changes(), clock, logger)
	tracked := storage.NewTrackedStore(recordStore, tracker, nil)

	planner := syncpkg.NewPlanner(tracker, checkpoints, tracked, remoteClient, clock, logger)
	resolver := syncpkg.NewResolver(logger)
	queue := syncpkg.NewQueue(stateStore.Queue(), clock, logger)
	executor := syncpkg.NewExecutor(
		remoteClient,
		recordStore, // скачанные записи применяются мимо трекера
		tracker,
		resolver,
		queue,
		checkpoints,
		clock,
		logger,
		syncpkg.DefaultExecutorConfig(),
	)

	cfg := syncpkg.DefaultConfig()
	cfg.SyncInterval = *syncInterval
	scheduler := syncpkg.NewIntervalScheduler(clock, cfg.SyncInterval)

	orchestrator := syncpkg.NewOrchestrator(
		cfg,
		planner,
		executor,
		tracker,
		queue,
		checkpoints,
		stateStore,
		authService,
		remoteClient,
		clock,
		scheduler,
		logger,
	)
	tracked.SetNotify(orchestrator.NotifyLocalChange)

	c := cli.New(tracked, authService, orchestrator, tracker)

	if err := dispatch(ctx, c, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, c *cli.Cli, command string, args []string) error {
	switch command {
	case "login":
		return c.RunLogin(ctx, args)
	case "logout":
		return c.RunLogout(ctx, args)
	case "add-volunteer":
		return c.RunAddVolunteer(ctx, args)
	case "add-event":
		return c.RunAddEvent(ctx, args)
	case "checkin":
		return c.RunCheckin(ctx, args)
	case "list":
		return c.RunList(ctx, args)
	case "sync":
		return c.RunSync(ctx, args)
	case "status":
		return c.RunStatus(ctx, args)
	case "watch":
		return c.RunWatch(ctx, args)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Volunteer Attendance Tracker\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
