package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"
)

//go:embed *.sql
var migrationFiles embed.FS

// Migration is one NNN_name.sql file
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// RunMigrations applies every bundled migration that has not run yet, each in
// its own transaction
func RunMigrations(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return fmt.Errorf("failed to list pending migrations: %v", err)
	}
	if len(pending) == 0 {
		log.Println("database schema is up to date")
		return nil
	}

	for _, migration := range pending {
		log.Printf("applying migration %03d_%s", migration.Version, migration.Name)
		if err := applyMigration(db, migration); err != nil {
			return fmt.Errorf("failed to apply migration %03d_%s: %v", migration.Version, migration.Name, err)
		}
	}

	log.Printf("applied %d migrations", len(pending))
	return nil
}

const schemaTable = "palette_schema_migrations"

func createMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ` + schemaTable + ` (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

// getAppliedMigrations returns the set of recorded versions
func getAppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM ` + schemaTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[int]bool{}
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// readMigrationFiles reads the NNN_name.sql files in fsys, ordered by version
func readMigrationFiles(fsys fs.FS) ([]Migration, error) {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		var version int
		var name string
		if _, err := fmt.Sscanf(file.Name(), "%d_%s", &version, &name); err != nil {
			log.Printf("skipping migration file without a version: %s", file.Name())
			continue
		}

		content, err := fs.ReadFile(fsys, file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %v", file.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(name, ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// Pending lists bundled migrations not yet recorded as applied, in version order
func Pending(db *sql.DB) ([]Migration, error) {
	if err := createMigrationsTable(db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %v", err)
	}
	applied, err := getAppliedMigrations(db)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %v", err)
	}
	all, err := readMigrationFiles(migrationFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration files: %v", err)
	}
	return unapplied(all, applied), nil
}

func unapplied(all []Migration, applied map[int]bool) []Migration {
	pending := []Migration{}
	for _, m := range all {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	return pending
}

// applyMigration runs one migration and its bookkeeping row in a single transaction
func applyMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO `+schemaTable+` (version, name) VALUES ($1, $2)`, migration.Version, migration.Name); err != nil {
		return err
	}
	return tx.Commit()
}
