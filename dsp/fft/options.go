package fft

// Strategy selects the transform implementation.
type Strategy int

const (
	// StrategyRecursive splits every stage into freshly gathered even and odd
	// halves and recurses. It is the reference implementation.
	StrategyRecursive Strategy = iota
	// StrategyIterative permutes into bit-reversed order and runs the
	// butterflies in place.
	StrategyIterative
	// StrategyPlan delegates to github.com/cwbudde/algo-fft plans.
	StrategyPlan
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyRecursive:
		return "recursive"
	case StrategyIterative:
		return "iterative"
	case StrategyPlan:
		return "plan"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{StrategyRecursive, StrategyIterative, StrategyPlan} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, ErrUnknownStrategy
}

type config struct {
	strategy Strategy
}

// Option configures a transform call.
type Option func(*config)

// WithStrategy selects the transform implementation.
func WithStrategy(s Strategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}

func applyOptions(opts []Option) config {
	cfg := config{strategy: StrategyRecursive}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
