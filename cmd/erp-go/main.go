// @title mogutouERP API
// @version 1.0
// @description Inventory and order management backend for a small business
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token for authentication. Format: 'Bearer <token>'
package main

import (
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/a957924278/mogutouERP-go/internal/api"
	"github.com/a957924278/mogutouERP-go/internal/app/auth"
	"github.com/a957924278/mogutouERP-go/internal/app/config"
	"github.com/a957924278/mogutouERP-go/internal/app/dsn"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
	"github.com/a957924278/mogutouERP-go/internal/app/service"
)

func main() {
	app := &cli.App{
		Name:  "erp-go",
		Usage: "inventory and order management backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Action: func(c *cli.Context) error {
					api.StartServer()
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "source",
						Value: "file://migrations",
						Usage: "migrations source",
					},
				},
				Action: func(c *cli.Context) error {
					return runMigrations(c.String("source"))
				},
			},
			{
				Name:  "create-admin",
				Usage: "create an administrator account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true, Usage: "administrator name"},
					&cli.StringFlag{Name: "tel", Required: true, Usage: "administrator telephone"},
					&cli.StringFlag{Name: "password", Required: true, Usage: "administrator password"},
				},
				Action: func(c *cli.Context) error {
					return createAdmin(c.String("name"), c.String("tel"), c.String("password"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// runMigrations - применение SQL миграций к Postgres
func runMigrations(source string) error {
	m, err := migrate.New(source, dsn.ToURL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logrus.Info("migrations applied")
	return nil
}

// createAdmin - создание администратора (аналог scripts/createAdmin)
func createAdmin(name, tel, password string) error {
	conf, err := config.NewConfig()
	if err != nil {
		return err
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		return err
	}

	jwtService := auth.NewJWTService(conf.JWTSecret, conf.JWTAccessTokenExpire, conf.JWTRefreshTokenExpire)
	authService := service.NewAuthService(repo, jwtService)

	user, err := authService.CreateAdmin(name, tel, password)
	if err != nil {
		return err
	}

	logrus.Infof("admin user created: id=%s tel=%s", user.ID, user.Tel)
	return nil
}
