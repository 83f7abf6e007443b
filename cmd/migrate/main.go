package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"pricetracker/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	_ = godotenv.Load()

	log := logrus.New()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to ping database")
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.WithError(err).Fatal("goose: failed to set dialect")
	}

	log.Info("running database migrations...")
	if err := goose.Up(db, *dir); err != nil {
		log.WithError(err).Fatal("goose migration failed")
	}

	log.Info("migrations completed successfully")
}
