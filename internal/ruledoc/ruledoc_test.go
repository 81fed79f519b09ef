//go:build unit

package ruledoc_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/ruledoc"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docNow = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

const rulesYAML = `
name: Lunch happy hour
type: time_based
priority: high
min_price: 500
configuration:
  happy_hours: [12, 13]
  happy_hour_discount: 20
examples:
  - name: lunch
    base_price: 1000
    at: 2025-06-03T12:15:00Z
    expect: 800
  - name: breakfast
    base_price: 1000
    at: 2025-06-03T08:00:00Z
    expect: 1000
---
name: Clearance
type: inventory_based
configuration:
  low_stock_threshold: 10
  base_discount: 25
examples:
  - base_price: 1000
    stock: 5
    expect: 650
`

func TestParse_MultipleDocuments(t *testing.T) {
	docs, err := ruledoc.Parse(strings.NewReader(rulesYAML))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "Lunch happy hour", docs[0].Name)
	assert.Equal(t, int64(500), *docs[0].MinPrice)
	assert.Len(t, docs[0].Examples, 2)
	assert.Equal(t, time.Date(2025, 6, 3, 12, 15, 0, 0, time.UTC), docs[0].Examples[0].At.UTC())
	assert.Equal(t, "inventory_based", docs[1].Type)

	calc := pricing.NewCalculator(nil)
	for _, d := range docs {
		rule, err := d.Rule(docNow)
		require.NoError(t, err, d.Name)
		assert.Empty(t, d.Check(context.Background(), calc, rule, docNow), d.Name)
	}
}

func TestDocument_CheckReportsMismatch(t *testing.T) {
	docs, err := ruledoc.Parse(strings.NewReader(`
name: Bulk
type: volume
configuration:
  tiers:
    - {min_quantity: 10, discount_percent: 5}
    - {min_quantity: 50, discount_percent: 10}
examples:
  - name: sixty units
    base_price: 1000
    quantity: 60
    expect: 950
`))
	require.NoError(t, err)
	rule, err := docs[0].Rule(docNow)
	require.NoError(t, err)

	failures := docs[0].Check(context.Background(), pricing.NewCalculator(nil), rule, docNow)

	want := []ruledoc.Failure{{Example: "sixty units", Want: 950, Got: 900}}
	if diff := cmp.Diff(want, failures); diff != "" {
		t.Errorf("failures mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "sixty units: want 950, got 900", failures[0].String())
}

func TestParse_NumericMonthKeysAreNormalized(t *testing.T) {
	docs, err := ruledoc.Parse(strings.NewReader(`
name: Holidays
type: seasonal
configuration:
  monthly_adjustments:
    12: 15
    january: -10
`))
	require.NoError(t, err)

	adjustments, ok := docs[0].Configuration["monthly_adjustments"].(map[string]any)
	require.True(t, ok, "expected map[string]any, got %T", docs[0].Configuration["monthly_adjustments"])
	assert.Equal(t, map[string]any{"12": 15, "january": -10}, adjustments)

	rule, err := docs[0].Rule(docNow)
	require.NoError(t, err)
	q := pricing.NewCalculator(nil).Calculate(context.Background(), 1000, rule,
		ruledoc.Example{At: time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)}.Context(docNow))
	assert.Equal(t, int64(1150), q.Price)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty input", input: "", want: ruledoc.ErrNoDocuments},
		{name: "unknown field", input: "name: x\ntype: bundle\ncolour: red\n", want: ruledoc.ErrInvalidDocument},
		{name: "malformed yaml", input: "name: [unterminated\n", want: ruledoc.ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ruledoc.Parse(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDocument_RuleValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  ruledoc.Document
		want error
	}{
		{
			name: "bad product id",
			doc:  ruledoc.Document{Name: "x", Type: "bundle", ProductID: "not-a-uuid"},
			want: ruledoc.ErrInvalidDocument,
		},
		{
			name: "unknown rule type",
			doc:  ruledoc.Document{Name: "x", Type: "lottery"},
			want: pricing.ErrInvalidRuleType,
		},
		{
			name: "configuration does not parse",
			doc: ruledoc.Document{Name: "x", Type: "competitor_based", Configuration: map[string]any{
				"strategy": "undercut",
			}},
			want: pricing.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Rule(docNow)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestExample_ContextDefaults(t *testing.T) {
	ec := ruledoc.Example{Competitors: []int64{900}}.Context(docNow)

	assert.Equal(t, docNow, ec.At)
	assert.Equal(t, 1, ec.Quantity)
	assert.Equal(t, []int64{900}, ec.CompetitorPrices)
}
