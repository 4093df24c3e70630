package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/DillonStreator/typedid/config"
	"github.com/DillonStreator/typedid/jwt"
	"github.com/DillonStreator/typedid/storage"
	"github.com/eleanorhealth/milo"
	"github.com/go-pg/pg/v10"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	db := pg.Connect(&pg.Options{
		Addr:     cfg.DBAddr,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
	})
	defer db.Close()

	err = storage.CreateSchema(db)
	if err != nil {
		log.Fatal(err)
	}

	store := milo.NewStore(db, storage.MiloEntityModelMap)

	s := &server{
		users:  storage.NewUsers(store),
		todos:  storage.NewTodos(db),
		signer: jwt.NewSigner(cfg.JWTSecret, cfg.TokenTTL),
		log:    logger,
		rates:  defaultRates,
		now:    time.Now,
	}

	logger.Info("listening", slog.String("port", cfg.Port))
	err = startServer(cfg, s)
	if err != nil {
		log.Fatal(err)
	}
}
