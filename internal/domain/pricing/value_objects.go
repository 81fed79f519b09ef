package pricing

import (
	"strings"
	"time"
)

const MaxRuleNameLength = 120

type Bounds struct {
	min *int64
	max *int64
}

func NewBounds(minPrice, maxPrice *int64) (Bounds, error) {
	if (minPrice != nil && *minPrice < 0) || (maxPrice != nil && *maxPrice < 0) {
		return Bounds{}, ErrNegativePriceBound
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return Bounds{}, ErrInvalidPriceBounds
	}
	return Bounds{min: copyInt64(minPrice), max: copyInt64(maxPrice)}, nil
}

func (b Bounds) Min() *int64 { return copyInt64(b.min) }
func (b Bounds) Max() *int64 { return copyInt64(b.max) }

// Clamp floors at zero before applying the configured bounds.
func (b Bounds) Clamp(price int64) int64 {
	if price < 0 {
		price = 0
	}
	if b.min != nil && price < *b.min {
		price = *b.min
	}
	if b.max != nil && price > *b.max {
		price = *b.max
	}
	return price
}

type Window struct {
	start *time.Time
	end   *time.Time
}

func NewWindow(start, end *time.Time) (Window, error) {
	if start != nil && end != nil && start.After(*end) {
		return Window{}, ErrInvalidDateWindow
	}
	return Window{start: copyTime(start), end: copyTime(end)}, nil
}

func (w Window) Start() *time.Time { return copyTime(w.start) }
func (w Window) End() *time.Time   { return copyTime(w.end) }

func (w Window) Contains(t time.Time) bool {
	if w.start != nil && t.Before(*w.start) {
		return false
	}
	if w.end != nil && t.After(*w.end) {
		return false
	}
	return true
}

func (w Window) HasEndedAt(t time.Time) bool {
	return w.end != nil && t.After(*w.end)
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Name{}, ErrEmptyRuleName
	}
	if len(v) > MaxRuleNameLength {
		return Name{}, ErrRuleNameTooLong
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Settings is the raw configuration map a rule is stored with.
type Settings map[string]any

func (s Settings) Clone() Settings {
	if s == nil {
		return Settings{}
	}
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Settings(t).Clone())
	case Settings:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
