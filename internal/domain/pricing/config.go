package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"dynamic-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	keyHappyHours          = "happy_hours"
	keyHappyHourDiscount   = "happy_hour_discount"
	keyFlashSaleActive     = "flash_sale_active"
	keyFlashSaleDiscount   = "flash_sale_discount"
	keyLowStockThreshold   = "low_stock_threshold"
	keyBaseDiscount        = "base_discount"
	keyHighDemandThreshold = "high_demand_threshold"
	keyLowDemandThreshold  = "low_demand_threshold"
	keySurgePercent        = "surge_percent"
	keyDiscountPercent     = "discount_percent"
	keyStrategy            = "strategy"
	keyUndercutPercent     = "undercut_percent"
	keyPremiumPercent      = "premium_percent"
	keyMonthlyAdjustments  = "monthly_adjustments"
	keyTier2To4Discount    = "tier_2_4_discount"
	keyTier5To9Discount    = "tier_5_9_discount"
	keyTier10PlusDiscount  = "tier_10_plus_discount"
	keyTiers               = "tiers"
	keyMinQuantity         = "min_quantity"
	keyModel               = "model"
)

var (
	hundred = decimal.NewFromInt(100)
)

// RuleConfig is the closed set of typed configurations, one per rule type.
type RuleConfig interface {
	RuleType() RuleType
}

type TimeBasedConfig struct {
	HappyHours        []int
	HappyHourDiscount decimal.Decimal
	FlashSaleActive   bool
	FlashSaleDiscount decimal.Decimal
}

func (TimeBasedConfig) RuleType() RuleType { return RuleTypeTimeBased }

func (c TimeBasedConfig) IsHappyHour(hour int) bool {
	for _, h := range c.HappyHours {
		if h == hour {
			return true
		}
	}
	return false
}

type InventoryConfig struct {
	LowStockThreshold int
	BaseDiscount      decimal.Decimal
}

func (InventoryConfig) RuleType() RuleType { return RuleTypeInventoryBased }

type DemandConfig struct {
	HighDemandThreshold decimal.Decimal
	LowDemandThreshold  decimal.Decimal
	SurgePercent        decimal.Decimal
	DiscountPercent     decimal.Decimal
}

func (DemandConfig) RuleType() RuleType { return RuleTypeDemandBased }

type CompetitorStrategy string

const (
	StrategyMatchLowest  CompetitorStrategy = "match_lowest"
	StrategyUndercut     CompetitorStrategy = "undercut"
	StrategyMatchAverage CompetitorStrategy = "match_average"
	StrategyPremium      CompetitorStrategy = "premium"
)

type CompetitorConfig struct {
	Strategy        CompetitorStrategy
	UndercutPercent decimal.Decimal
	PremiumPercent  decimal.Decimal
}

func (CompetitorConfig) RuleType() RuleType { return RuleTypeCompetitorBased }

type SeasonalConfig struct {
	Adjustments map[time.Month]decimal.Decimal
}

func (SeasonalConfig) RuleType() RuleType { return RuleTypeSeasonal }

type BundleConfig struct {
	SmallDiscount  decimal.Decimal // 2-4 units
	MediumDiscount decimal.Decimal // 5-9 units
	LargeDiscount  decimal.Decimal // 10+ units
}

func (BundleConfig) RuleType() RuleType { return RuleTypeBundle }

type VolumeTier struct {
	MinQuantity     int
	DiscountPercent decimal.Decimal
}

type VolumeConfig struct {
	Tiers []VolumeTier // sorted by MinQuantity ascending
}

func (VolumeConfig) RuleType() RuleType { return RuleTypeVolume }

type AIConfig struct {
	Model string
}

func (AIConfig) RuleType() RuleType { return RuleTypeAIOptimized }

// ParseConfig turns the stored settings into the typed configuration of
// the given rule type. Every failure is marked ErrInvalidConfiguration.
func ParseConfig(t RuleType, s Settings) (RuleConfig, error) {
	p := settingsParser{s: s}
	switch t {
	case RuleTypeTimeBased:
		return p.timeBased()
	case RuleTypeInventoryBased:
		return p.inventory()
	case RuleTypeDemandBased:
		return p.demand()
	case RuleTypeCompetitorBased:
		return p.competitor()
	case RuleTypeSeasonal:
		return p.seasonal()
	case RuleTypeBundle:
		return p.bundle()
	case RuleTypeVolume:
		return p.volume()
	case RuleTypeAIOptimized:
		return p.ai()
	default:
		return nil, errs.Mark(ErrInvalidRuleType, ErrInvalidConfiguration)
	}
}

type settingsParser struct {
	s Settings
}

func invalidConfig(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), ErrInvalidConfiguration)
}

func (p settingsParser) timeBased() (RuleConfig, error) {
	cfg := TimeBasedConfig{}

	hours, hasHours, err := intList(p.s, keyHappyHours)
	if err != nil {
		return nil, err
	}
	for _, h := range hours {
		if h < 0 || h > 23 {
			return nil, invalidConfig("%s: hour %d out of range", keyHappyHours, h)
		}
	}
	cfg.HappyHours = hours

	discount, hasDiscount, err := percent(p.s, keyHappyHourDiscount)
	if err != nil {
		return nil, err
	}
	if hasHours != hasDiscount {
		return nil, invalidConfig("%s and %s must be set together", keyHappyHours, keyHappyHourDiscount)
	}
	cfg.HappyHourDiscount = discount

	active, _, err := boolean(p.s, keyFlashSaleActive)
	if err != nil {
		return nil, err
	}
	cfg.FlashSaleActive = active

	flash, hasFlash, err := percent(p.s, keyFlashSaleDiscount)
	if err != nil {
		return nil, err
	}
	if active && !hasFlash {
		return nil, invalidConfig("%s is required when %s is set", keyFlashSaleDiscount, keyFlashSaleActive)
	}
	cfg.FlashSaleDiscount = flash

	if !hasHours && !hasFlash {
		return nil, invalidConfig("time based rule needs %s or %s", keyHappyHours, keyFlashSaleDiscount)
	}
	return cfg, nil
}

func (p settingsParser) inventory() (RuleConfig, error) {
	threshold, ok, err := integer(p.s, keyLowStockThreshold)
	if err != nil {
		return nil, err
	}
	if !ok || threshold <= 0 {
		return nil, invalidConfig("%s must be a positive integer", keyLowStockThreshold)
	}
	base, ok, err := percent(p.s, keyBaseDiscount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidConfig("%s is required", keyBaseDiscount)
	}
	return InventoryConfig{LowStockThreshold: threshold, BaseDiscount: base}, nil
}

func (p settingsParser) demand() (RuleConfig, error) {
	high, err := requiredNumber(p.s, keyHighDemandThreshold)
	if err != nil {
		return nil, err
	}
	low, err := requiredNumber(p.s, keyLowDemandThreshold)
	if err != nil {
		return nil, err
	}
	if low.GreaterThan(high) {
		return nil, invalidConfig("%s cannot exceed %s", keyLowDemandThreshold, keyHighDemandThreshold)
	}
	surge, ok, err := markup(p.s, keySurgePercent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidConfig("%s is required", keySurgePercent)
	}
	discount, ok, err := percent(p.s, keyDiscountPercent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidConfig("%s is required", keyDiscountPercent)
	}
	return DemandConfig{
		HighDemandThreshold: high,
		LowDemandThreshold:  low,
		SurgePercent:        surge,
		DiscountPercent:     discount,
	}, nil
}

func (p settingsParser) competitor() (RuleConfig, error) {
	raw, ok := p.s[keyStrategy].(string)
	if !ok {
		return nil, invalidConfig("%s is required", keyStrategy)
	}
	cfg := CompetitorConfig{Strategy: CompetitorStrategy(strings.ToLower(strings.TrimSpace(raw)))}

	switch cfg.Strategy {
	case StrategyMatchLowest, StrategyMatchAverage:
	case StrategyUndercut:
		v, ok, err := percent(p.s, keyUndercutPercent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, invalidConfig("%s is required for %s", keyUndercutPercent, StrategyUndercut)
		}
		cfg.UndercutPercent = v
	case StrategyPremium:
		v, ok, err := markup(p.s, keyPremiumPercent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, invalidConfig("%s is required for %s", keyPremiumPercent, StrategyPremium)
		}
		cfg.PremiumPercent = v
	default:
		return nil, invalidConfig("unknown %s %q", keyStrategy, raw)
	}
	return cfg, nil
}

func (p settingsParser) seasonal() (RuleConfig, error) {
	raw, ok := asMap(p.s[keyMonthlyAdjustments])
	if !ok {
		return nil, invalidConfig("%s must be a map of month to percent", keyMonthlyAdjustments)
	}
	cfg := SeasonalConfig{Adjustments: make(map[time.Month]decimal.Decimal, len(raw))}
	for k, v := range raw {
		month, err := parseMonth(k)
		if err != nil {
			return nil, err
		}
		adj, err := toDecimal(v)
		if err != nil {
			return nil, invalidConfig("%s[%s]: %v", keyMonthlyAdjustments, k, err)
		}
		if adj.LessThan(hundred.Neg()) {
			return nil, invalidConfig("%s[%s] cannot be below -100", keyMonthlyAdjustments, k)
		}
		cfg.Adjustments[month] = adj
	}
	return cfg, nil
}

func (p settingsParser) bundle() (RuleConfig, error) {
	small, _, err := percent(p.s, keyTier2To4Discount)
	if err != nil {
		return nil, err
	}
	medium, _, err := percent(p.s, keyTier5To9Discount)
	if err != nil {
		return nil, err
	}
	large, _, err := percent(p.s, keyTier10PlusDiscount)
	if err != nil {
		return nil, err
	}
	return BundleConfig{SmallDiscount: small, MediumDiscount: medium, LargeDiscount: large}, nil
}

func (p settingsParser) volume() (RuleConfig, error) {
	rawTiers, ok := p.s[keyTiers].([]any)
	if !ok || len(rawTiers) == 0 {
		return nil, invalidConfig("%s must be a non-empty list", keyTiers)
	}
	tiers := make([]VolumeTier, 0, len(rawTiers))
	for i, rt := range rawTiers {
		m, ok := asMap(rt)
		if !ok {
			return nil, invalidConfig("%s[%d] must be an object", keyTiers, i)
		}
		minQty, ok, err := integer(m, keyMinQuantity)
		if err != nil {
			return nil, err
		}
		if !ok || minQty <= 0 {
			return nil, invalidConfig("%s[%d].%s must be a positive integer", keyTiers, i, keyMinQuantity)
		}
		discount, ok, err := percent(m, keyDiscountPercent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, invalidConfig("%s[%d].%s is required", keyTiers, i, keyDiscountPercent)
		}
		tiers = append(tiers, VolumeTier{MinQuantity: minQty, DiscountPercent: discount})
	}
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinQuantity < tiers[j].MinQuantity })
	return VolumeConfig{Tiers: tiers}, nil
}

func (p settingsParser) ai() (RuleConfig, error) {
	cfg := AIConfig{}
	if v, ok := p.s[keyModel]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, invalidConfig("%s must be a string", keyModel)
		}
		cfg.Model = s
	}
	return cfg, nil
}

func parseMonth(k string) (time.Month, error) {
	k = strings.ToLower(strings.TrimSpace(k))
	if n, err := strconv.Atoi(k); err == nil {
		if n < 1 || n > 12 {
			return 0, invalidConfig("%s: month %d out of range", keyMonthlyAdjustments, n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if k == name || k == name[:3] {
			return m, nil
		}
	}
	return 0, invalidConfig("%s: unknown month %q", keyMonthlyAdjustments, k)
}

// percent reads a discount in [0, 100].
func percent(m map[string]any, key string) (decimal.Decimal, bool, error) {
	v, ok, err := number(m, key)
	if err != nil || !ok {
		return decimal.Zero, ok, err
	}
	if v.IsNegative() || v.GreaterThan(hundred) {
		return decimal.Zero, false, invalidConfig("%s must be between 0 and 100", key)
	}
	return v, true, nil
}

// markup reads a non-negative increase with no upper limit.
func markup(m map[string]any, key string) (decimal.Decimal, bool, error) {
	v, ok, err := number(m, key)
	if err != nil || !ok {
		return decimal.Zero, ok, err
	}
	if v.IsNegative() {
		return decimal.Zero, false, invalidConfig("%s cannot be negative", key)
	}
	return v, true, nil
}

func requiredNumber(m map[string]any, key string) (decimal.Decimal, error) {
	v, ok, err := number(m, key)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, invalidConfig("%s is required", key)
	}
	return v, nil
}

func number(m map[string]any, key string) (decimal.Decimal, bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return decimal.Zero, false, nil
	}
	d, err := toDecimal(raw)
	if err != nil {
		return decimal.Zero, false, invalidConfig("%s: %v", key, err)
	}
	return d, true, nil
}

func integer(m map[string]any, key string) (int, bool, error) {
	d, ok, err := number(m, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if !d.IsInteger() || !fitsInt32(d) {
		return 0, false, invalidConfig("%s must be an integer", key)
	}
	return int(d.IntPart()), true, nil
}

var (
	minInt32 = decimal.NewFromInt(math.MinInt32)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
)

// IntPart wraps silently past int64, so anything wider is refused up front.
func fitsInt32(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(minInt32) && d.LessThanOrEqual(maxInt32)
}

func intList(m map[string]any, key string) ([]int, bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, false, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false, invalidConfig("%s must be a list", key)
	}
	out := make([]int, 0, len(items))
	for i, item := range items {
		d, err := toDecimal(item)
		if err != nil || !d.IsInteger() || !fitsInt32(d) {
			return nil, false, invalidConfig("%s[%d] must be an integer", key, i)
		}
		out = append(out, int(d.IntPart()))
	}
	return out, true, nil
}

func boolean(m map[string]any, key string) (bool, bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return false, false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, false, invalidConfig("%s must be a boolean", key)
	}
	return b, true, nil
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Settings:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// toDecimal accepts what JSON and YAML decoders produce for numbers.
func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), nil
	case float32:
		return decimal.NewFromFloat32(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int32:
		return decimal.NewFromInt32(t), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case uint64:
		return decimal.NewFromUint64(t), nil
	case json.Number:
		return decimal.NewFromString(t.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	case decimal.Decimal:
		return t, nil
	default:
		return decimal.Zero, fmt.Errorf("not a number: %T", v)
	}
}
