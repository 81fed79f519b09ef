package main

import (
	"fmt"
	"time"

	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint an operator token for the pricing API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "operator", Usage: "Operator ID, a new one when empty"},
			&cli.StringFlag{Name: "role", Value: string(operator.RoleViewer), Usage: "viewer, merchant or admin"},
			&cli.StringFlag{Name: "secret", Usage: "Signing secret", EnvVars: []string{"JWT_SECRET"}, Required: true},
			&cli.StringFlag{Name: "issuer", Value: "dynamic-pricing", EnvVars: []string{"JWT_ISSUER"}},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "Token lifetime"},
		},
		Action: runToken,
	}
}

func runToken(c *cli.Context) error {
	role, err := operator.NewRole(c.String("role"))
	if err != nil {
		return fmt.Errorf("%w: %q", err, c.String("role"))
	}

	id := uuid.New()
	if raw := c.String("operator"); raw != "" {
		if id, err = uuid.Parse(raw); err != nil {
			return fmt.Errorf("invalid --operator: %w", err)
		}
	}

	svc := jwt.NewService(c.String("secret"), c.Duration("ttl"), c.String("issuer"), clock.NewRealClock())
	token, expiresAt, err := svc.GenerateToken(id, role)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "operator: %s\nrole:     %s\nexpires:  %s\n%s\n",
		id, role, expiresAt.UTC().Format(time.RFC3339), token)
	return nil
}
