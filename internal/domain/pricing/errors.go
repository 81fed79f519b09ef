package pricing

import "dynamic-pricing/internal/pkg/errs"

var (
	ErrInvalidRuleType         = errs.New("invalid rule type")
	ErrInvalidStatus           = errs.New("invalid rule status")
	ErrInvalidPriority         = errs.New("invalid rule priority")
	ErrEmptyRuleName           = errs.New("rule name cannot be empty")
	ErrRuleNameTooLong         = errs.New("rule name is too long")
	ErrInvalidPriceBounds      = errs.New("min price cannot exceed max price")
	ErrNegativePriceBound      = errs.New("price bounds cannot be negative")
	ErrInvalidDateWindow       = errs.New("start date cannot be after end date")
	ErrInvalidConfiguration    = errs.New("invalid rule configuration")
	ErrInvalidStatusTransition = errs.New("invalid rule status transition")
	ErrRuleNotEditable         = errs.New("rule can no longer be edited")

	ErrMissingRule          = errs.New("no rule to evaluate")
	ErrNegativeBasePrice    = errs.New("base price cannot be negative")
	ErrPredictorUnavailable = errs.New("price predictor unavailable")

	ErrNegativePrice = errs.New("price cannot be negative")
	ErrNoPriceChange = errs.New("old and new price are equal")
	ErrInvalidSource = errs.New("invalid price change source")
)
