package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/tempobook/backend/internal/config"
	"github.com/tempobook/backend/internal/repository"
	"github.com/tempobook/backend/internal/seed"
	"github.com/tempobook/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var slug string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert demo fixture, 2: insert random bookings for a provider)")
	flag.IntVar(&n, "n", 10, "number of records to insert")
	flag.StringVar(&slug, "slug", "", "slug of the provider to insert bookings for")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not dial; ping to fail fast on a bad DSN.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		seed.SeedDemoData(cfg, repo)
	case 2:
		if slug == "" {
			slog.Error("a provider slug is required")
			return
		}
		if n <= 0 {
			slog.Error("the number of bookings must be positive")
			return
		}

		provider, err := repo.GetProviderBySlug(slug)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("no provider with this slug", slog.String("slug", slug))
			default:
				slog.Error("unable to look up provider", slog.String("error", err.Error()))
			}
			return
		}

		services, err := repo.GetServicesByProviderID(provider.ID)
		if err != nil {
			slog.Error("unable to list provider services", slog.String("error", err.Error()))
			return
		}
		if len(services) == 0 {
			slog.Error("the provider has no services to book")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			booking := utils.GenerateRandomBooking(provider.ID, services[i%len(services)].ID)
			if err := repo.CreateBooking(booking); err != nil {
				slog.Error("unable to insert booking", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("bookings inserted", slog.Int("count", cnt))
	default:
		slog.Error("unknown operation")
	}
}
