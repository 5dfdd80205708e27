package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/terraincognita07/minder/internal/security"
	"github.com/terraincognita07/minder/internal/services"
)

const (
	defaultPort          = "8080"
	defaultReconcileCron = "5 0 * * *"
	minSecretKeyLength   = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Location       *time.Location
	DBPath         string
	Port           string
	SecretKey      string
	CookieSecure   bool
	ReconcileCron  string
	BackfillPolicy string
}

// Load reads .env when present, then the process environment. Variables
// already set in the environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	secretKey, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return Config{}, err
	}
	reconcileCron, err := resolveReconcileCron()
	if err != nil {
		return Config{}, err
	}
	policy := strings.ToLower(strings.TrimSpace(os.Getenv("MINDER_BACKFILL_POLICY")))
	if _, err := services.BackfillPolicyByName(policy); err != nil {
		return Config{}, fmt.Errorf("MINDER_BACKFILL_POLICY: %w", err)
	}

	return Config{
		Location:       LoadLocation(getEnv("TZ", "UTC")),
		DBPath:         getEnv("DB_PATH", filepath.Join("data", "minder.db")),
		Port:           port,
		SecretKey:      secretKey,
		CookieSecure:   cookieSecure,
		ReconcileCron:  reconcileCron,
		BackfillPolicy: policy,
	}, nil
}

func LoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

// An empty SECRET_KEY gets a per-process key, so sessions end on restart.
func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		generated, err := security.NewSecretKey()
		if err != nil {
			return "", fmt.Errorf("generate SECRET_KEY: %w", err)
		}
		log.Printf("SECRET_KEY not set, using a generated key for this run")
		return generated, nil
	}
	if _, insecure := insecureSecretKeys[secret]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(os.Getenv("PORT"))
	if raw == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, raw)
	}
	return value, nil
}

func resolveReconcileCron() (string, error) {
	spec := getEnv("MINDER_RECONCILE_CRON", defaultReconcileCron)
	if _, err := cron.ParseStandard(spec); err != nil {
		return "", fmt.Errorf("invalid MINDER_RECONCILE_CRON %q: %w", spec, err)
	}
	return spec, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
