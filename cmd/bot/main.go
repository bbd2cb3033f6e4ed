package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/calendar"
	"github.com/diegoclair/discord-schedule-bot/internal/config"
	"github.com/diegoclair/discord-schedule-bot/internal/database"
	"github.com/diegoclair/discord-schedule-bot/internal/discord"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/service"
	"github.com/diegoclair/discord-schedule-bot/internal/handlers"
	"github.com/diegoclair/discord-schedule-bot/internal/logger"
	"github.com/diegoclair/discord-schedule-bot/internal/scheduler"
	"github.com/diegoclair/discord-schedule-bot/internal/slack"
	"github.com/diegoclair/discord-schedule-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Debug: cfg.Debug, Silent: cfg.Silent})
	if envErr != nil {
		log.Warn(".env file not found")
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("bot stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info("running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return err
	}
	log.Info("migrations completed successfully")

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	dates, err := datetime.NewParser(loc, cfg.NaturalDates)
	if err != nil {
		return err
	}
	publicKey, err := cfg.PublicKey()
	if err != nil {
		return err
	}

	discordClient := discord.New(cfg.DiscordBotToken, cfg.AppID(), cfg.GuildID())

	var notifier contract.Notifier
	if n := slack.NewWebhookNotifier(cfg.SlackWebhookURL, &http.Client{Timeout: 10 * time.Second}); n != nil {
		notifier = n
		log.Info("reminders will be mirrored to slack")
	}

	services := service.NewInstance(database.NewInstance(db), discordClient, calendar.NoopClient{}, notifier, service.Options{
		Dates:           dates,
		ReminderChannel: cfg.ReminderChannel(),
	}, log)

	if cfg.SyncOnStart {
		if err := services.ServerInfo.SyncRoles(ctx); err != nil {
			log.Error("initial role sync failed", "error", err)
		}
		if err := services.ServerInfo.SyncMembers(ctx); err != nil {
			log.Error("initial member sync failed", "error", err)
		}
	}

	sched := scheduler.New(loc, logger.Component(log, "scheduler"),
		scheduler.Job{Name: "sync_roles", Cadence: scheduler.Hourly, Run: services.ServerInfo.SyncRoles},
		scheduler.Job{Name: "sync_members", Cadence: scheduler.Daily, Run: services.ServerInfo.SyncMembers},
		scheduler.Job{Name: "reminders", Cadence: scheduler.Hourly, Run: services.Reminder.SendReminders},
	)
	sched.Start()
	defer sched.Stop()

	handler := handlers.New(services, publicKey, logger.Component(log, "http"))
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Routes(limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
