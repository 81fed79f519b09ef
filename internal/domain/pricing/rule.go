package pricing

import (
	"time"

	"github.com/google/uuid"
)

type RuleParams struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Type      string
	Status    string
	Priority  string
	MinPrice  *int64
	MaxPrice  *int64
	StartsAt  *time.Time
	EndsAt    *time.Time
	Settings  Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Rule struct {
	id        uuid.UUID
	productID uuid.UUID
	name      Name
	ruleType  RuleType
	status    Status
	priority  Priority
	bounds    Bounds
	window    Window
	settings  Settings
	createdAt time.Time
	updatedAt time.Time
}

// NewRule validates every invariant, including the typed configuration of
// the rule type. Status defaults to draft and priority to medium.
func NewRule(p RuleParams, now time.Time) (*Rule, error) {
	name, err := NewName(p.Name)
	if err != nil {
		return nil, err
	}

	ruleType, err := NewRuleType(p.Type)
	if err != nil {
		return nil, err
	}

	status := StatusDraft
	if p.Status != "" {
		if status, err = NewStatus(p.Status); err != nil {
			return nil, err
		}
	}

	priority := PriorityMedium
	if p.Priority != "" {
		if priority, err = NewPriority(p.Priority); err != nil {
			return nil, err
		}
	}

	bounds, err := NewBounds(p.MinPrice, p.MaxPrice)
	if err != nil {
		return nil, err
	}

	window, err := NewWindow(p.StartsAt, p.EndsAt)
	if err != nil {
		return nil, err
	}

	settings := p.Settings.Clone()
	if _, err := ParseConfig(ruleType, settings); err != nil {
		return nil, err
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Rule{
		id:        id,
		productID: p.ProductID,
		name:      name,
		ruleType:  ruleType,
		status:    status,
		priority:  priority,
		bounds:    bounds,
		window:    window,
		settings:  settings,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRule rebuilds a stored rule without re-validating its
// configuration, so that a corrupt configuration surfaces at evaluation.
func ReconstructRule(p RuleParams) *Rule {
	return &Rule{
		id:        p.ID,
		productID: p.ProductID,
		name:      Name{value: p.Name},
		ruleType:  RuleType(p.Type),
		status:    Status(p.Status),
		priority:  Priority(p.Priority),
		bounds:    Bounds{min: copyInt64(p.MinPrice), max: copyInt64(p.MaxPrice)},
		window:    Window{start: copyTime(p.StartsAt), end: copyTime(p.EndsAt)},
		settings:  p.Settings.Clone(),
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
}

type RuleUpdate struct {
	Name     *string
	Priority *string
	MinPrice *int64
	MaxPrice *int64
	StartsAt *time.Time
	EndsAt   *time.Time
	Settings Settings
}

// Apply returns the updated copy; the receiver is left untouched when any
// field fails validation.
func (r *Rule) Apply(u RuleUpdate, now time.Time) (*Rule, error) {
	if !r.status.IsEditable() {
		return nil, ErrRuleNotEditable
	}

	next := *r
	if u.Name != nil {
		name, err := NewName(*u.Name)
		if err != nil {
			return nil, err
		}
		next.name = name
	}
	if u.Priority != nil {
		priority, err := NewPriority(*u.Priority)
		if err != nil {
			return nil, err
		}
		next.priority = priority
	}

	bounds, err := NewBounds(u.MinPrice, u.MaxPrice)
	if err != nil {
		return nil, err
	}
	next.bounds = bounds

	window, err := NewWindow(u.StartsAt, u.EndsAt)
	if err != nil {
		return nil, err
	}
	next.window = window

	if u.Settings != nil {
		settings := u.Settings.Clone()
		if _, err := ParseConfig(next.ruleType, settings); err != nil {
			return nil, err
		}
		next.settings = settings
	}

	next.updatedAt = now
	return &next, nil
}

func (r *Rule) TransitionTo(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(status) {
		return ErrInvalidStatusTransition
	}
	r.status = status
	r.updatedAt = now
	return nil
}

func (r *Rule) IsApplicableAt(t time.Time) bool {
	return r.status == StatusActive && r.window.Contains(t)
}

// ShouldExpireAt reports whether a live rule has run past its end date.
func (r *Rule) ShouldExpireAt(t time.Time) bool {
	return (r.status == StatusActive || r.status == StatusPaused) && r.window.HasEndedAt(t)
}

// Config parses the stored settings into the typed configuration.
func (r *Rule) Config() (RuleConfig, error) {
	return ParseConfig(r.ruleType, r.settings)
}

func (r *Rule) ID() uuid.UUID        { return r.id }
func (r *Rule) ProductID() uuid.UUID { return r.productID }
func (r *Rule) Name() string         { return r.name.String() }
func (r *Rule) Type() RuleType       { return r.ruleType }
func (r *Rule) Status() Status       { return r.status }
func (r *Rule) Priority() Priority   { return r.priority }
func (r *Rule) Bounds() Bounds       { return r.bounds }
func (r *Rule) Window() Window       { return r.window }
func (r *Rule) Settings() Settings   { return r.settings.Clone() }
func (r *Rule) CreatedAt() time.Time { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time { return r.updatedAt }
