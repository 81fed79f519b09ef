package converter

import (
	"bytes"
	"encoding/json"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/errs"
	"dynamic-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func RuleToCreateParams(r *pricing.Rule, createdBy *uuid.UUID) (query.CreatePricingRuleParams, error) {
	cfg, err := EncodeSettings(r.Settings())
	if err != nil {
		return query.CreatePricingRuleParams{}, err
	}
	return query.CreatePricingRuleParams{
		ID:            r.ID(),
		ProductID:     r.ProductID(),
		Name:          r.Name(),
		RuleType:      r.Type().String(),
		Status:        r.Status().String(),
		Priority:      r.Priority().String(),
		MinPrice:      pgconv.Int64PtrToPgtype(r.Bounds().Min()),
		MaxPrice:      pgconv.Int64PtrToPgtype(r.Bounds().Max()),
		StartsAt:      pgconv.TimePtrToPgtype(r.Window().Start()),
		EndsAt:        pgconv.TimePtrToPgtype(r.Window().End()),
		Configuration: cfg,
		CreatedBy:     pgconv.UUIDPtrToPgtype(createdBy),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func RuleToUpdateParams(r *pricing.Rule) (query.UpdatePricingRuleParams, error) {
	cfg, err := EncodeSettings(r.Settings())
	if err != nil {
		return query.UpdatePricingRuleParams{}, err
	}
	return query.UpdatePricingRuleParams{
		ID:            r.ID(),
		Name:          r.Name(),
		Status:        r.Status().String(),
		Priority:      r.Priority().String(),
		MinPrice:      pgconv.Int64PtrToPgtype(r.Bounds().Min()),
		MaxPrice:      pgconv.Int64PtrToPgtype(r.Bounds().Max()),
		StartsAt:      pgconv.TimePtrToPgtype(r.Window().Start()),
		EndsAt:        pgconv.TimePtrToPgtype(r.Window().End()),
		Configuration: cfg,
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

// RuleFromRow rebuilds the aggregate. A configuration column that is not a
// JSON object yields an empty settings map so evaluation fails closed.
func RuleFromRow(row query.PricingRule) *pricing.Rule {
	settings, err := DecodeSettings(row.Configuration)
	if err != nil {
		settings = pricing.Settings{}
	}
	return pricing.ReconstructRule(pricing.RuleParams{
		ID:        row.ID,
		ProductID: row.ProductID,
		Name:      row.Name,
		Type:      row.RuleType,
		Status:    row.Status,
		Priority:  row.Priority,
		MinPrice:  pgconv.Int64PtrFromPgtype(row.MinPrice),
		MaxPrice:  pgconv.Int64PtrFromPgtype(row.MaxPrice),
		StartsAt:  pgconv.TimePtrFromPgtype(row.StartsAt),
		EndsAt:    pgconv.TimePtrFromPgtype(row.EndsAt),
		Settings:  settings,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func RulesFromRows(rows []query.PricingRule) []*pricing.Rule {
	out := make([]*pricing.Rule, 0, len(rows))
	for _, row := range rows {
		out = append(out, RuleFromRow(row))
	}
	return out
}

func EncodeSettings(s pricing.Settings) ([]byte, error) {
	if s == nil {
		s = pricing.Settings{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode rule configuration")
	}
	return b, nil
}

// DecodeSettings keeps numbers as json.Number so integers survive exactly.
func DecodeSettings(raw []byte) (pricing.Settings, error) {
	if len(raw) == 0 {
		return pricing.Settings{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var s pricing.Settings
	if err := dec.Decode(&s); err != nil {
		return nil, errs.Wrap(err, "failed to decode rule configuration")
	}
	if s == nil {
		s = pricing.Settings{}
	}
	return s, nil
}
