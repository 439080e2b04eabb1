// migrate applies the embedded schema migrations: migrate up | down | version.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ajharbinger/leaderboard-api/internal/database"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	databaseURL := &cli.StringFlag{
		Name:     "database-url",
		Usage:    "Postgres DSN",
		EnvVars:  []string{"DATABASE_URL"},
		Required: true,
	}

	return &cli.App{
		Name:  "migrate",
		Usage: "leaderboard schema migrations",
		Flags: []cli.Flag{databaseURL},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return run(c, "up")
				},
			},
			{
				Name:  "down",
				Usage: "roll back all migrations",
				Action: func(c *cli.Context) error {
					return run(c, "down")
				},
			},
			{
				Name:  "version",
				Usage: "print the applied schema version",
				Action: func(c *cli.Context) error {
					version, dirty, ok, err := database.Version(c.String("database-url"))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(c.App.Writer, "no migrations applied")
						return nil
					}
					fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
					return nil
				},
			},
		},
	}
}

func run(c *cli.Context, direction string) error {
	err := database.Migrate(c.String("database-url"), direction)
	if errors.Is(err, database.ErrNoChange) {
		fmt.Fprintln(c.App.Writer, "no change")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "migrated %s\n", direction)
	return nil
}
