package pricing

import (
	"bytes"
	"time"
)

// SelectRule picks the rule to apply at t among the candidates: the
// applicable rule with the highest priority, then the most recently
// updated, then the greatest id so the choice is stable.
func SelectRule(rules []*Rule, t time.Time) (*Rule, bool) {
	var best *Rule
	for _, r := range rules {
		if r == nil || !r.IsApplicableAt(t) {
			continue
		}
		if best == nil || outranks(r, best) {
			best = r
		}
	}
	return best, best != nil
}

func outranks(a, b *Rule) bool {
	if wa, wb := a.priority.Weight(), b.priority.Weight(); wa != wb {
		return wa > wb
	}
	if !a.updatedAt.Equal(b.updatedAt) {
		return a.updatedAt.After(b.updatedAt)
	}
	return bytes.Compare(a.id[:], b.id[:]) > 0
}
