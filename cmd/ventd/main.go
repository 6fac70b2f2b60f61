package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-migrate/migrate/v4"
	migrates "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/feelspace/feelsync/internal/connectivity"
	"github.com/feelspace/feelsync/internal/identity"
	remoteapi "github.com/feelspace/feelsync/internal/remote/api"
	"github.com/feelspace/feelsync/internal/rooms"
	"github.com/feelspace/feelsync/internal/seed"
	"github.com/feelspace/feelsync/internal/server"
	"github.com/feelspace/feelsync/internal/service/impl"
	"github.com/feelspace/feelsync/internal/storage/sqlite"
	"github.com/feelspace/feelsync/internal/syncer"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"127.0.0.1" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"8315" description:"port to listen on"`

	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"15s" description:"request processing timeout"`

	SQLite           string `long:"sqlite" env:"SQLITE" default:"feelsync.db" description:"sqlite database path"`
	SQLiteMigrations string `long:"sqlite.migrations" env:"SQLITE_MIGRATIONS" default:"migrations/sqlite" description:"sqlite migrations directory"`

	Backend        string        `long:"backend" env:"BACKEND" default:"https://api.feelspace.app" description:"backend base url"`
	BackendTimeout time.Duration `long:"backend.timeout" env:"BACKEND_TIMEOUT" default:"5s" description:"timeout for backend requests"`

	ProbeInterval time.Duration `long:"connectivity.probe_interval" env:"CONNECTIVITY_PROBE_INTERVAL" default:"15s" description:"interval between connectivity probes"`
	FlushInterval time.Duration `long:"sync.flush_interval" env:"SYNC_FLUSH_INTERVAL" default:"1m" description:"interval between periodic queue flushes"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Feelsync"
	parser.LongDescription = "Feelsync is the local-first data core of Feelspace"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	db := mustGetDB()

	s := sqlite.New(db)
	gateway := remoteapi.New(opts.Backend, opts.BackendTimeout)

	watcher := connectivity.New(gateway, opts.ProbeInterval)
	watcher.Probe(context.Background())

	engine := impl.New(
		s,
		gateway,
		identity.New(s),
		rooms.New(gateway, s),
		watcher,
		seed.NewGenerator(),
	)

	flusher := syncer.New(engine, watcher, opts.FlushInterval)

	r := chi.NewMux()
	server.SetupRouter(engine, r, opts.RequestTimeout)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return watcher.Run(ctx)
	})
	gr.Go(func() error {
		return flusher.Run(ctx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		cancel()

		return errTerminated
	})

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=on", opts.SQLite))
	if err != nil {
		logrus.WithError(err).Fatal("failed to open sqlite database")
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping sqlite")
	}

	driver, err := migrates.WithInstance(db, &migrates.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.SQLiteMigrations), "sqlite3", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
