package main

import (
	"fmt"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending schema migrations with atlas",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Usage: "Target database URL", EnvVars: []string{"DATABASE_URL"}, Required: true},
			&cli.StringFlag{Name: "dir", Value: "file://migrations", Usage: "Migration directory URL"},
			&cli.StringFlag{Name: "atlas", Value: "atlas", Usage: "Path to the atlas binary"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print pending migrations without applying them"},
		},
		Action: runMigrate,
	}
}

func runMigrate(c *cli.Context) error {
	client, err := atlasexec.NewClient(".", c.String("atlas"))
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(c.Context, &atlasexec.MigrateApplyParams{
		URL:    c.String("url"),
		DirURL: c.String("dir"),
		DryRun: c.Bool("dry-run"),
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "applied %d migrations, schema at version %q\n", len(res.Applied), res.Target)
	return nil
}
