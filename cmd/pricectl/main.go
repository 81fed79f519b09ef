// pricectl works with pricing rules outside the running service.
//
// Usage:
//
//	pricectl evaluate --rule rules.yaml --price 1000 [context flags]
//	pricectl validate --rule rules.yaml
//	pricectl migrate --url postgres://... [--dir file://migrations]
//	pricectl token --role merchant
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "pricectl",
		Usage:   "Evaluate, validate and ship dynamic pricing rules",
		Version: version,
		Commands: []*cli.Command{
			evaluateCommand(),
			validateCommand(),
			migrateCommand(),
			tokenCommand(),
		},
	}
}
