package db

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/minder/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)
var addColumnStatementPattern = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+([^\s]+)\s+ADD\s+COLUMN\s+([^\s]+)\b`)

var ErrMigrationChecksumMismatch = errors.New("applied migration was modified")

type schemaMigration struct {
	Version  string
	Order    int
	Name     string
	SQL      string
	Checksum string
}

type appliedMigration struct {
	Version  string `gorm:"column:version"`
	Checksum string `gorm:"column:checksum"`
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return applyMigrations(database, embeddedmigrations.Files)
}

func applyMigrations(database *gorm.DB, files fs.FS) error {
	if err := ensureSchemaMigrationsTable(database); err != nil {
		return err
	}

	pending, err := readMigrations(files)
	if err != nil {
		return err
	}

	applied, err := loadAppliedMigrations(database)
	if err != nil {
		return err
	}

	for _, migration := range pending {
		if checksum, done := applied[migration.Version]; done {
			if checksum != "" && checksum != migration.Checksum {
				return fmt.Errorf("%w: %s", ErrMigrationChecksumMismatch, migration.Name)
			}
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func ensureSchemaMigrationsTable(database *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  checksum TEXT NOT NULL DEFAULT '',
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

func readMigrations(files fs.FS) ([]schemaMigration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]schemaMigration, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSpace(entry.Name())
		matches := migrationFilePattern.FindStringSubmatch(name)
		if len(matches) != 2 {
			continue
		}

		version := matches[1]
		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", name, err)
		}
		if previous, duplicate := seen[version]; duplicate {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, previous, name)
		}
		seen[version] = name

		raw, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		sum := sha256.Sum256(raw)
		migrations = append(migrations, schemaMigration{
			Version:  version,
			Order:    order,
			Name:     name,
			SQL:      string(raw),
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.SliceStable(migrations, func(i, j int) bool {
		return migrations[i].Order < migrations[j].Order
	})
	return migrations, nil
}

func loadAppliedMigrations(database *gorm.DB) (map[string]string, error) {
	rows := make([]appliedMigration, 0)
	if err := database.Raw(`SELECT version, checksum FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}

	applied := make(map[string]string, len(rows))
	for _, row := range rows {
		applied[row.Version] = row.Checksum
	}
	return applied, nil
}

func runMigration(database *gorm.DB, migration schemaMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		statements := splitSQLStatements(migration.SQL)
		if len(statements) == 0 {
			return fmt.Errorf("migration %s has no SQL statements", migration.Name)
		}

		for _, statement := range statements {
			exists, err := addedColumnExists(tx, statement)
			if err != nil {
				return fmt.Errorf("inspect migration %s: %w", migration.Name, err)
			}
			if exists {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", migration.Name, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name, checksum) VALUES (?, ?, ?)`,
			migration.Version,
			migration.Name,
			migration.Checksum,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// addedColumnExists reports whether an ALTER TABLE ... ADD COLUMN statement
// targets a column that is already present, so re-runs stay idempotent.
func addedColumnExists(database *gorm.DB, statement string) (bool, error) {
	matches := addColumnStatementPattern.FindStringSubmatch(strings.TrimSpace(statement))
	if len(matches) != 3 {
		return false, nil
	}
	return tableHasColumn(database, unquoteIdentifier(matches[1]), unquoteIdentifier(matches[2]))
}

type tableColumn struct {
	Name string `gorm:"column:name"`
}

func tableHasColumn(database *gorm.DB, table string, column string) (bool, error) {
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))
	columns := make([]tableColumn, 0)
	if err := database.Raw(query).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, candidate := range columns {
		if strings.EqualFold(strings.TrimSpace(candidate.Name), column) {
			return true, nil
		}
	}
	return false, nil
}

func unquoteIdentifier(identifier string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(identifier), "\"`[]"))
}
