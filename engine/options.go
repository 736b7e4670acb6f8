package engine

import "time"

// Config collects the optional instrumentation a Parse call can be asked
// to perform. The zero value disables all of it, matching the teacher's
// ParserConfig default of no telemetry.
type Config struct {
	timing bool
}

// Option configures a Parse call, in the style of the teacher's
// ParserOpt/ParserConfig functional options.
type Option func(*Config)

// WithTelemetryTiming enables wall-clock and counter telemetry, returned
// alongside the parse result by ParseWithTelemetry.
func WithTelemetryTiming() Option {
	return func(c *Config) { c.timing = true }
}

// Telemetry reports counters gathered during a Parse call when
// WithTelemetryTiming was given. RuleEvals counts every NonTerminal
// reference evaluated, including one whose rule is not defined (the start
// rule, entered directly, is not counted); AtomicAttempts counts every
// Literal/Regex/EndOfInput probe, successful or not.
type Telemetry struct {
	Duration       time.Duration
	RuleEvals      int
	AtomicAttempts int
}
