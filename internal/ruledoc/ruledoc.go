// Package ruledoc reads pricing rules from YAML so they can be checked and
// evaluated without a database. A file may hold several documents separated
// by "---".
package ruledoc

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoDocuments     = errs.New("no rule documents found")
	ErrInvalidDocument = errs.New("invalid rule document")
)

type Document struct {
	Name          string         `yaml:"name"`
	Type          string         `yaml:"type"`
	Status        string         `yaml:"status,omitempty"`
	Priority      string         `yaml:"priority,omitempty"`
	ProductID     string         `yaml:"product_id,omitempty"`
	MinPrice      *int64         `yaml:"min_price,omitempty"`
	MaxPrice      *int64         `yaml:"max_price,omitempty"`
	StartsAt      *time.Time     `yaml:"starts_at,omitempty"`
	EndsAt        *time.Time     `yaml:"ends_at,omitempty"`
	Configuration map[string]any `yaml:"configuration"`
	Examples      []Example      `yaml:"examples,omitempty"`
}

// Example pins the price a rule must produce for one context.
type Example struct {
	Name        string    `yaml:"name"`
	BasePrice   int64     `yaml:"base_price"`
	At          time.Time `yaml:"at"`
	Stock       int       `yaml:"stock"`
	Views       int       `yaml:"views"`
	Purchases   int       `yaml:"purchases"`
	Competitors []int64   `yaml:"competitors"`
	Quantity    int       `yaml:"quantity"`
	Expect      int64     `yaml:"expect"`
}

func Parse(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document
	for {
		var d Document
		err := dec.Decode(&d)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "document %d", len(docs)+1), ErrInvalidDocument)
		}
		d.Configuration = normalize(d.Configuration)
		docs = append(docs, d)
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs, nil
}

func LoadFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Rule validates the document the same way the API validates a new rule.
func (d Document) Rule(now time.Time) (*pricing.Rule, error) {
	var productID uuid.UUID
	if d.ProductID != "" {
		id, err := uuid.Parse(d.ProductID)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "product_id %q", d.ProductID), ErrInvalidDocument)
		}
		productID = id
	}

	return pricing.NewRule(pricing.RuleParams{
		ProductID: productID,
		Name:      d.Name,
		Type:      d.Type,
		Status:    d.Status,
		Priority:  d.Priority,
		MinPrice:  d.MinPrice,
		MaxPrice:  d.MaxPrice,
		StartsAt:  d.StartsAt,
		EndsAt:    d.EndsAt,
		Settings:  pricing.Settings(d.Configuration),
	}, now)
}

// Context builds the evaluation context; a zero At falls back to now and a
// zero quantity to one.
func (e Example) Context(now time.Time) pricing.EvaluationContext {
	at := e.At
	if at.IsZero() {
		at = now
	}
	qty := e.Quantity
	if qty <= 0 {
		qty = 1
	}
	return pricing.EvaluationContext{
		At:               at,
		StockLevel:       e.Stock,
		RecentViews:      e.Views,
		RecentPurchases:  e.Purchases,
		CompetitorPrices: e.Competitors,
		Quantity:         qty,
	}
}

type Failure struct {
	Example string
	Want    int64
	Got     int64
	Issue   error
}

func (f Failure) String() string {
	if f.Issue != nil {
		return fmt.Sprintf("%s: want %d, got %d (%v)", f.Example, f.Want, f.Got, f.Issue)
	}
	return fmt.Sprintf("%s: want %d, got %d", f.Example, f.Want, f.Got)
}

// Check evaluates every example of the document against rule.
func (d Document) Check(ctx context.Context, calc pricing.PriceCalculator, rule *pricing.Rule, now time.Time) []Failure {
	var failures []Failure
	for i, ex := range d.Examples {
		name := ex.Name
		if name == "" {
			name = fmt.Sprintf("example %d", i+1)
		}
		q := calc.Calculate(ctx, ex.BasePrice, rule, ex.Context(now))
		if q.Price != ex.Expect {
			failures = append(failures, Failure{Example: name, Want: ex.Expect, Got: q.Price, Issue: q.Issue})
		}
	}
	return failures
}

// normalize rewrites the map[any]any values yaml produces for non-string
// keys, so settings stay JSON encodable.
func normalize(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalize(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeValue(t[i])
		}
		return out
	default:
		return v
	}
}
