package queries

import "dynamic-pricing/internal/pkg/errs"

var (
	ErrPricingRuleNotFound = errs.New("pricing rule not found")
	ErrProductNotFound     = errs.New("product not found")
	ErrRuleProductMismatch = errs.New("pricing rule belongs to another product")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidQuantity     = errs.New("quantity cannot be negative")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)
