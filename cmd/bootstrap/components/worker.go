package components

import (
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/config"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/shared"
	"dynamic-pricing/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxRelay,
		NewRuleExpirer,
		NewScheduler,
	),
	fx.Invoke(
		func(lc fx.Lifecycle, s *worker.Scheduler) {
			lc.Append(fx.StartStopHook(s.Start, s.Stop))
		},
	),
)

func NewOutboxRelay(uow shared.UnitOfWork, publisher worker.Publisher, clk clock.Clock, cfg config.Config) *worker.OutboxRelay {
	return worker.NewOutboxRelay(uow, publisher, clk, cfg.Worker.OutboxBatchSize)
}

func NewRuleExpirer(rules commands.PricingRuleCommands) *worker.RuleExpirer {
	return worker.NewRuleExpirer(rules)
}

func NewScheduler(relay *worker.OutboxRelay, expirer *worker.RuleExpirer, cfg config.Config) (*worker.Scheduler, error) {
	s := worker.NewScheduler()
	if err := s.Register("outbox-relay", cfg.Worker.OutboxPollInterval, relay); err != nil {
		return nil, err
	}
	if err := s.Register("rule-expirer", cfg.Worker.RuleExpiryInterval, expirer); err != nil {
		return nil, err
	}
	return s, nil
}
