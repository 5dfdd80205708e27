package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/terraincognita07/minder/internal/api"
	"github.com/terraincognita07/minder/internal/cli"
	"github.com/terraincognita07/minder/internal/config"
	"github.com/terraincognita07/minder/internal/db"
	"github.com/terraincognita07/minder/internal/services"
)

const usage = `usage: minder [command]

commands:
  serve                      run the local API (default)
  set-passcode [--generate]  set the caregiver passcode
  clear-passcode             remove the caregiver passcode
  reconcile                  record yesterday's untaken doses now`

var errUnknownCommand = errors.New("unknown command")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	time.Local = cfg.Location

	if err := runCommand(os.Args[1:], cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprintln(os.Stderr, usage)
		}
		log.Fatal(err)
	}
}

func runCommand(args []string, cfg config.Config, stdin *os.File, stdout io.Writer) error {
	if len(args) == 0 {
		return serve(cfg)
	}

	switch args[0] {
	case "serve":
		return serve(cfg)
	case "set-passcode":
		var prompt cli.PasscodePrompt
		if len(args) < 2 || args[1] != "--generate" {
			prompt = cli.TerminalPasscodePrompt(stdin, stdout)
		}
		return cli.RunSetPasscodeCommand(cfg.DBPath, prompt, stdout)
	case "clear-passcode":
		return cli.RunClearPasscodeCommand(cfg.DBPath, stdout)
	case "reconcile":
		return cli.RunReconcileCommand(cfg.DBPath, cfg.Location, cfg.BackfillPolicy, time.Now(), stdout)
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownCommand, args[0])
	}
}

func serve(cfg config.Config) error {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	policy, err := services.BackfillPolicyByName(cfg.BackfillPolicy)
	if err != nil {
		return err
	}
	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.Location, api.HandlerOptions{
		CookieSecure:   cfg.CookieSecure,
		BackfillPolicy: policy,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	reconcileOnce(handler.Reconciler())
	scheduler, err := newReconcileScheduler(cfg.ReconcileCron, cfg.Location, handler.Reconciler())
	if err != nil {
		return err
	}
	scheduler.Start()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		<-scheduler.Stop().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Minder listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Minder",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

// newReconcileScheduler runs the catch-up pass on a schedule so a device that
// is never reopened still closes out the previous day.
func newReconcileScheduler(spec string, location *time.Location, reconciler *services.ReconciliationService) (*cron.Cron, error) {
	scheduler := cron.New(
		cron.WithLocation(location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := scheduler.AddFunc(spec, func() { reconcileOnce(reconciler) }); err != nil {
		return nil, fmt.Errorf("schedule reconciliation: %w", err)
	}
	return scheduler, nil
}

func reconcileOnce(reconciler *services.ReconciliationService) {
	result, err := reconciler.RunIfNeeded(time.Now())
	if err != nil {
		log.Printf("reconciliation failed: %v", err)
		return
	}
	if result.Ran {
		log.Printf("reconciled %v: %d missed dose(s) recorded", result.Days, result.Created)
	}
}
