// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var migrationsFS embed.FS

// Driver is the database/sql driver name registered by pgx stdlib.
const Driver = "pgx"

func setupGoose() error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	return nil
}

// Up applies all pending migrations to the database behind connString.
func Up(connString string) error {
	db, err := sql.Open(Driver, connString)
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	return UpDB(db)
}

func UpDB(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return errors.New("running migrations error: " + err.Error())
	}
	slog.Info("migrations completed successfully")
	return nil
}

// Down rolls back the latest migration.
func Down(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Down(db, "."); err != nil {
		return errors.New("rolling back migration error: " + err.Error())
	}
	slog.Info("rolled back one migration")
	return nil
}
