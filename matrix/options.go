// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Calculator and numeric policy.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultMaxOrder is the largest determinant order a Calculator accepts.
	// 0 means unbounded.
	DefaultMaxOrder = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicObserverNil    = "matrix: WithObserver: observer must not be nil"
	panicMaxOrderTooLow = "matrix: WithMaxOrder: order must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	observer Observer // nil ⇒ events are dropped
	maxOrder int      // 0 ⇒ unbounded; DefaultMaxOrder
}

// WithObserver routes every Calculator event to o.
// Panics if o is nil; omit the option to run without an observer.
func WithObserver(o Observer) Option {
	if o == nil {
		panic(panicObserverNil)
	}

	return func(opts *Options) { opts.observer = o }
}

// WithMaxOrder bounds the order of matrices accepted by Calculator.Determinant.
// Larger inputs fail fast with ErrOrderTooLarge before any expansion starts.
//
// Notes:
//   - Cofactor expansion is O(n!): order 10 is ~3.6M leaf products, order 12
//     is ~479M. Use this when input sizes come from untrusted sources.
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic(panicMaxOrderTooLow)
	}

	return func(opts *Options) { opts.maxOrder = n }
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{maxOrder: DefaultMaxOrder}
}

// gatherOptions applies user options over defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
