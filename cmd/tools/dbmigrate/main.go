// cmd/tools/dbmigrate/main.go
//
// Standalone migration runner for operating on a database file directly,
// outside the server's startup migration path.
//
//	dbmigrate -db data/leaguedesk.db -migrations internal/db/migrations up
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dbPath := flag.String("db", "", "SQLite database file")
	migrationsPath := flag.String("migrations", "internal/db/migrations", "migrations directory")
	flag.Parse()

	command := flag.Arg(0)
	if *dbPath == "" || command == "" {
		fmt.Fprintf(os.Stderr, "usage: dbmigrate -db <file> [-migrations <dir>] up|down|version\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*dbPath, *migrationsPath, command); err != nil {
		log.Fatalf("dbmigrate %s: %v", command, err)
	}
}

func run(dbPath, migrationsPath, command string) error {
	absDB, err := filepath.Abs(dbPath)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	absMigrations, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("resolve migrations path: %w", err)
	}
	if _, err := os.Stat(absMigrations); err != nil {
		return fmt.Errorf("migrations directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absDB), 0755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	m, err := migrate.New("file://"+absMigrations, "sqlite3://"+absDB)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("schema is up to date")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("schema rolled back")
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("version %d, dirty %v", version, dirty)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
