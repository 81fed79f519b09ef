package main

import (
	"encoding/json"
	"fmt"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra/predictor"
	"dynamic-pricing/internal/ruledoc"

	"github.com/urfave/cli/v2"
)

type evaluation struct {
	Name      string `json:"name"`
	RuleType  string `json:"rule_type"`
	BasePrice int64  `json:"base_price"`
	Price     int64  `json:"price"`
	Outcome   string `json:"outcome"`
	Issue     string `json:"issue,omitempty"`
}

func ruleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "rule",
		Aliases:  []string{"r"},
		Usage:    "Path to a YAML rule file",
		Required: true,
	}
}

func evaluateCommand() *cli.Command {
	return &cli.Command{
		Name:  "evaluate",
		Usage: "Price a product with every rule in a file",
		Flags: []cli.Flag{
			ruleFlag(),
			&cli.Int64Flag{Name: "price", Aliases: []string{"p"}, Usage: "Base price in minor units", Required: true},
			&cli.StringFlag{Name: "at", Usage: "Evaluation time (RFC 3339), defaults to now"},
			&cli.IntFlag{Name: "stock", Usage: "Units in stock"},
			&cli.IntFlag{Name: "views", Usage: "Views in the last 24 hours"},
			&cli.IntFlag{Name: "purchases", Usage: "Purchases in the last 24 hours"},
			&cli.Int64SliceFlag{Name: "competitor", Usage: "Competitor price, repeatable"},
			&cli.IntFlag{Name: "quantity", Aliases: []string{"q"}, Value: 1, Usage: "Units in the order"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format (text, json)"},
			&cli.StringFlag{Name: "predictor-url", Usage: "Price predictor for ai_optimized rules", EnvVars: []string{"PREDICTOR_URL"}},
			&cli.DurationFlag{Name: "predictor-timeout", Value: 2 * time.Second, Usage: "Predictor request timeout"},
		},
		Action: runEvaluate,
	}
}

func runEvaluate(c *cli.Context) error {
	now := time.Now().UTC()
	at := now
	if raw := c.String("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		at = parsed
	}

	docs, err := ruledoc.LoadFile(c.String("rule"))
	if err != nil {
		return err
	}

	var pred pricing.Predictor
	if url := c.String("predictor-url"); url != "" {
		pred = predictor.NewHTTPPredictor(url, c.Duration("predictor-timeout"))
	}
	calc := pricing.NewCalculator(pred)

	ec := pricing.EvaluationContext{
		At:               at,
		StockLevel:       c.Int("stock"),
		RecentViews:      c.Int("views"),
		RecentPurchases:  c.Int("purchases"),
		CompetitorPrices: c.Int64Slice("competitor"),
		Quantity:         max(c.Int("quantity"), 1),
	}

	results := make([]evaluation, 0, len(docs))
	for _, d := range docs {
		rule, err := d.Rule(now)
		if err != nil {
			return fmt.Errorf("rule %q: %w", d.Name, err)
		}
		q := calc.Calculate(c.Context, c.Int64("price"), rule, ec)
		e := evaluation{
			Name:      rule.Name(),
			RuleType:  rule.Type().String(),
			BasePrice: q.BasePrice,
			Price:     q.Price,
			Outcome:   string(q.Outcome),
		}
		if q.Issue != nil {
			e.Issue = q.Issue.Error()
		}
		results = append(results, e)
	}

	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "text":
		for _, e := range results {
			fmt.Fprintf(c.App.Writer, "%s (%s): %d -> %d [%s]", e.Name, e.RuleType, e.BasePrice, e.Price, e.Outcome)
			if e.Issue != "" {
				fmt.Fprintf(c.App.Writer, " %s", e.Issue)
			}
			fmt.Fprintln(c.App.Writer)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:   "validate",
		Usage:  "Check rule documents and run their examples",
		Flags:  []cli.Flag{ruleFlag()},
		Action: runValidate,
	}
}

func runValidate(c *cli.Context) error {
	docs, err := ruledoc.LoadFile(c.String("rule"))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	calc := pricing.NewCalculator(nil)
	failed := 0
	for _, d := range docs {
		rule, err := d.Rule(now)
		if err != nil {
			failed++
			fmt.Fprintf(c.App.Writer, "FAIL %s: %v\n", d.Name, err)
			continue
		}
		failures := d.Check(c.Context, calc, rule, now)
		if len(failures) == 0 {
			fmt.Fprintf(c.App.Writer, "ok   %s (%d examples)\n", d.Name, len(d.Examples))
			continue
		}
		failed++
		for _, f := range failures {
			fmt.Fprintf(c.App.Writer, "FAIL %s: %s\n", d.Name, f)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d rules failed", failed, len(docs))
	}
	return nil
}
