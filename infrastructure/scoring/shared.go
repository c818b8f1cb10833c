// Package scoring provides the deterministic scoring components of the
// prediction contest engine: per-match scoring, tiered replay scoring,
// bonus matching, and the participant scorer composing them.
package scoring

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Fixed point values of the match scoring cascade. The checks form a
// strict priority order: exact result, then outcome with matching margin,
// then outcome alone, then a single matching component, else zero.
const (
	// PointsExact is awarded when the guess equals the result exactly.
	PointsExact = 5

	// PointsMargin is awarded for the correct outcome and goal difference.
	PointsMargin = 3

	// PointsOutcome is awarded for the correct outcome alone.
	PointsOutcome = 2

	// PointsComponent is awarded when either goal count matches on its own.
	PointsComponent = 1
)

// Point values of the replay proximity tiers, per triple component.
const (
	// ReplayExactPoints is awarded for a component within the exact tier.
	ReplayExactPoints = 2

	// ReplayNearPoints is awarded for a component within the near tier.
	ReplayNearPoints = 1
)

// Common errors returned by scorer constructors.
var (
	// ErrTierOrder is returned when the near tier is tighter than the
	// exact tier, which would make the middle band unreachable.
	ErrTierOrder = errors.New("near tier must not be smaller than exact tier")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()
