package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/minder/internal/api"
	"github.com/terraincognita07/minder/internal/config"
	"github.com/terraincognita07/minder/internal/db"
	"github.com/terraincognita07/minder/internal/services"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Location:      time.UTC,
		DBPath:        filepath.Join(t.TempDir(), "minder.db"),
		Port:          "8080",
		SecretKey:     "0123456789abcdef0123456789abcdef",
		ReconcileCron: "5 0 * * *",
	}
}

func TestNewAppServesHealthAndUnknownRoutes(t *testing.T) {
	cfg := testConfig(t)
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.Location, api.HandlerOptions{})
	if err != nil {
		t.Fatalf("NewHandler returned error: %v", err)
	}
	app := newApp(handler)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", response.StatusCode)
	}

	response, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil), -1)
	if err != nil {
		t.Fatalf("unknown route request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", response.StatusCode)
	}
}

func TestRunCommandHelpAndUnknown(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	if err := runCommand([]string{"help"}, cfg, nil, &out); err != nil {
		t.Fatalf("help returned error: %v", err)
	}
	if !strings.Contains(out.String(), "set-passcode") {
		t.Fatalf("expected usage output, got %q", out.String())
	}

	err := runCommand([]string{"frobnicate"}, cfg, nil, &out)
	if !errors.Is(err, errUnknownCommand) {
		t.Fatalf("expected errUnknownCommand, got %v", err)
	}
}

func TestRunCommandPasscodeLifecycle(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	if err := runCommand([]string{"set-passcode", "--generate"}, cfg, nil, &out); err != nil {
		t.Fatalf("set-passcode returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Passcode: ") {
		t.Fatalf("expected generated passcode in output, got %q", out.String())
	}

	out.Reset()
	if err := runCommand([]string{"clear-passcode"}, cfg, nil, &out); err != nil {
		t.Fatalf("clear-passcode returned error: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	enabled, err := services.NewAccessService(db.NewRepositories(database).Settings).PasscodeEnabled()
	if err != nil {
		t.Fatalf("PasscodeEnabled returned error: %v", err)
	}
	if enabled {
		t.Fatal("expected passcode to be cleared")
	}
}

func TestRunCommandReconcile(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	if err := runCommand([]string{"reconcile"}, cfg, nil, &out); err != nil {
		t.Fatalf("reconcile returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Reconciled") {
		t.Fatalf("expected reconcile summary, got %q", out.String())
	}
}

func TestNewReconcileScheduler(t *testing.T) {
	cfg := testConfig(t)
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repositories := db.NewRepositories(database)
	reconciler := services.NewReconciliationService(repositories.MedicationLogs, repositories.Settings, repositories.Medications, nil, time.UTC)

	if _, err := newReconcileScheduler("not a cron spec", time.UTC, reconciler); err == nil {
		t.Fatal("expected invalid cron spec to fail")
	}

	scheduler, err := newReconcileScheduler(cfg.ReconcileCron, time.UTC, reconciler)
	if err != nil {
		t.Fatalf("newReconcileScheduler returned error: %v", err)
	}
	if entries := scheduler.Entries(); len(entries) != 1 {
		t.Fatalf("expected one scheduled entry, got %d", len(entries))
	}
}
