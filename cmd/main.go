// Package main runs the ledger API managing customers, accounts and journal entries.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/ledger/cmd/httpserver"
	"github.com/go-petr/ledger/internal/middleware"
	"github.com/go-petr/ledger/pkg/configpkg"
	"github.com/go-petr/ledger/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	if config.MigrationURL != "" {
		if err := dbpkg.Migrate(config.MigrationURL, config.DBSource); err != nil {
			logger.Fatal().Err(err).Msg("cannot migrate database")
		}
	}

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	dbpkg.Configure(db, config.DBMaxOpenConns, config.DBMaxIdleConns, config.DBConnMaxLifetime)

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
