package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ag-eitilt/Pocket-Binder/api"
	"github.com/ag-eitilt/Pocket-Binder/carddef"
	db "github.com/ag-eitilt/Pocket-Binder/db"
	"github.com/ag-eitilt/Pocket-Binder/tmpstore"
	"github.com/ag-eitilt/Pocket-Binder/util"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// Postgres connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	store := db.NewStore(conn)

	// running db migrations every time the server starts
	// it's idempotent, so the schema establishes only once if no new versions added
	runDBMigration(config.MigrationURL, config.DBSource)

	// bulk-load card definitions shipped with the binary before serving
	if err := loadDefinitions(ctx, config.DefsDir, store); err != nil {
		log.Fatal().Err(err).Msg("cannot load card definitions")
	}

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, store)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// loadDefinitions streams every *.xml definitions file under dir into the
// store. Each file is one import batch; a file the reducers reject aborts
// startup rather than leaving a half-loaded catalog.
func loadDefinitions(ctx context.Context, dir string, store db.Store) error {
	if dir == "" {
		return nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return err
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		sets, err := carddef.ParseSets(f)
		f.Close()
		if err != nil {
			return err
		}

		importID := uuid.New()

		for _, set := range sets {
			result, err := store.ImportSetTx(ctx, db.ImportSetTxParams{
				Set:      set,
				ImportID: importID,
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("file", filepath.Base(path)).
				Str("set", result.Set.Code).
				Int("cards", len(result.Cards)).
				Msg("card set loaded")
		}
	}

	return nil
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	cache := tmpstore.NewStore(&config)

	service, err := api.NewService(config, store, cache)

	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the db connection pool
		store.Shutdown()

		log.Info().Msg("binder server is stopped")

		return err
	})
}
