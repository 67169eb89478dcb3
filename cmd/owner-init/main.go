// Command owner-init creates a restaurant owner account from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/Rrahullkumar/shushiman/internal/cli"
	"github.com/Rrahullkumar/shushiman/internal/config"
	"github.com/Rrahullkumar/shushiman/internal/logging"
	"github.com/Rrahullkumar/shushiman/internal/repository"
	"github.com/Rrahullkumar/shushiman/internal/service"
	"github.com/Rrahullkumar/shushiman/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.Env)

	dbPool, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer dbPool.Close()

	ctx := context.Background()
	if err := config.RunMigrations(ctx, dbPool); err != nil {
		log.WithError(err).Fatal("failed to run database migrations")
	}

	authService := service.NewAuthService(
		repository.NewUserRepository(dbPool),
		utils.NewJWTUtil(cfg.JWTSecret, utils.DefaultTokenTTL),
		log,
		nil,
	)

	res, err := cli.RunOwnerInit(ctx, bufio.NewReader(os.Stdin), os.Stdout, authService)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		dbPool.Close()
		os.Exit(1)
	}
	fmt.Printf("Owner %s <%s> created with ID %s\n", res.User.Name, res.User.Email, res.User.ID)
}
