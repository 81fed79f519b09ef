package commands

import "dynamic-pricing/internal/pkg/errs"

var (
	ErrPricingRuleNotFound  = errs.New("pricing rule not found")
	ErrProductNotFound      = errs.New("product not found")
	ErrRuleProductMismatch  = errs.New("pricing rule belongs to another product")
	ErrRuleNotApplicable    = errs.New("pricing rule is not applicable now")
	ErrNoApplicableRule     = errs.New("no applicable pricing rule")
	ErrInvalidQuantity      = errs.New("quantity out of range")
	ErrInvalidEventKind     = errs.New("event kind must be view or purchase")
	ErrInvalidCompetitor    = errs.New("competitor name is required")
	ErrInvalidObservedPrice = errs.New("competitor price must be positive")
)
