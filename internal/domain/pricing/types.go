package pricing

type RuleType string

const (
	RuleTypeTimeBased       RuleType = "time_based"
	RuleTypeInventoryBased  RuleType = "inventory_based"
	RuleTypeDemandBased     RuleType = "demand_based"
	RuleTypeCompetitorBased RuleType = "competitor_based"
	RuleTypeSeasonal        RuleType = "seasonal"
	RuleTypeBundle          RuleType = "bundle"
	RuleTypeVolume          RuleType = "volume"
	RuleTypeAIOptimized     RuleType = "ai_optimized"
)

func (t RuleType) String() string {
	return string(t)
}

func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypeTimeBased, RuleTypeInventoryBased, RuleTypeDemandBased, RuleTypeCompetitorBased,
		RuleTypeSeasonal, RuleTypeBundle, RuleTypeVolume, RuleTypeAIOptimized:
		return true
	default:
		return false
	}
}

func NewRuleType(s string) (RuleType, error) {
	t := RuleType(s)
	if !t.IsValid() {
		return "", ErrInvalidRuleType
	}
	return t, nil
}

type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusExpired  Status = "expired"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusExpired, StatusArchived:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

var statusTransitions = map[Status][]Status{
	StatusDraft:   {StatusActive, StatusArchived},
	StatusActive:  {StatusPaused, StatusExpired, StatusArchived},
	StatusPaused:  {StatusActive, StatusExpired, StatusArchived},
	StatusExpired: {StatusArchived},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsEditable reports whether configuration updates are still accepted.
func (s Status) IsEditable() bool {
	return s != StatusExpired && s != StatusArchived
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var priorityWeights = map[Priority]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityWeights[p]
	return ok
}

func (p Priority) Weight() int {
	return priorityWeights[p]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}
