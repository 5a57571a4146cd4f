package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPolicy is returned when a policy field holds an unknown value
var ErrInvalidPolicy = errors.New("invalid assignment policy")

// AssignmentScope controls what happens to prior assignments
type AssignmentScope string

const (
	ScopeClear    AssignmentScope = "clear"
	ScopeFillGaps AssignmentScope = "fillGaps"
)

// Cohesion governs cross-squadron placement
type Cohesion string

const (
	CohesionEnforced    Cohesion = "enforced"
	CohesionPrioritized Cohesion = "prioritized"
	CohesionIgnore      Cohesion = "ignore"
)

// NonStandardHandling decides where flights with unrecognized call-signs go
type NonStandardHandling string

const (
	NonStandardIgnore     NonStandardHandling = "ignore"
	NonStandardFillFirst  NonStandardHandling = "fillFirst"
	NonStandardFillLast   NonStandardHandling = "fillLast"
	NonStandardInSequence NonStandardHandling = "fillInSequence"
)

// FillStrategy selects depth-first or breadth-first filling
type FillStrategy string

const (
	FillDepth   FillStrategy = "depth"
	FillBreadth FillStrategy = "breadth"
)

// Policy is the full set of toggles for one assignment run
type Policy struct {
	AssignmentScope             AssignmentScope     `json:"assignment_scope"`
	SquadronCohesion            Cohesion            `json:"squadron_cohesion"`
	NonStandardCallsignHandling NonStandardHandling `json:"non_standard_callsign_handling"`
	FillStrategy                FillStrategy        `json:"fill_strategy"`
	IncludeTentative            bool                `json:"include_tentative"`
	AllowUnqualified            bool                `json:"allow_unqualified"`
}

// DefaultPolicy is used for any field a caller leaves empty
func DefaultPolicy() Policy {
	return Policy{
		AssignmentScope:             ScopeClear,
		SquadronCohesion:            CohesionPrioritized,
		NonStandardCallsignHandling: NonStandardFillLast,
		FillStrategy:                FillDepth,
	}
}

// WithDefaults fills empty enum fields from DefaultPolicy.
func (p Policy) WithDefaults() Policy {
	d := DefaultPolicy()
	if p.AssignmentScope == "" {
		p.AssignmentScope = d.AssignmentScope
	}
	if p.SquadronCohesion == "" {
		p.SquadronCohesion = d.SquadronCohesion
	}
	if p.NonStandardCallsignHandling == "" {
		p.NonStandardCallsignHandling = d.NonStandardCallsignHandling
	}
	if p.FillStrategy == "" {
		p.FillStrategy = d.FillStrategy
	}
	return p
}

// Validate checks every enum field against its known values
func (p Policy) Validate() error {
	switch p.AssignmentScope {
	case ScopeClear, ScopeFillGaps:
	default:
		return fmt.Errorf("%w: assignment_scope %q", ErrInvalidPolicy, p.AssignmentScope)
	}
	switch p.SquadronCohesion {
	case CohesionEnforced, CohesionPrioritized, CohesionIgnore:
	default:
		return fmt.Errorf("%w: squadron_cohesion %q", ErrInvalidPolicy, p.SquadronCohesion)
	}
	switch p.NonStandardCallsignHandling {
	case NonStandardIgnore, NonStandardFillFirst, NonStandardFillLast, NonStandardInSequence:
	default:
		return fmt.Errorf("%w: non_standard_callsign_handling %q", ErrInvalidPolicy, p.NonStandardCallsignHandling)
	}
	switch p.FillStrategy {
	case FillDepth, FillBreadth:
	default:
		return fmt.Errorf("%w: fill_strategy %q", ErrInvalidPolicy, p.FillStrategy)
	}
	return nil
}

// ParsePolicy builds a policy from loosely formatted strings, as found in
// form fields. Matching is case-insensitive; empty strings take defaults.
func ParsePolicy(scope, cohesion, nonStandard, strategy string, includeTentative, allowUnqualified bool) (Policy, error) {
	p := Policy{
		AssignmentScope:             AssignmentScope(canonical(scope, string(ScopeClear), string(ScopeFillGaps))),
		SquadronCohesion:            Cohesion(canonical(cohesion, string(CohesionEnforced), string(CohesionPrioritized), string(CohesionIgnore))),
		NonStandardCallsignHandling: NonStandardHandling(canonical(nonStandard, string(NonStandardIgnore), string(NonStandardFillFirst), string(NonStandardFillLast), string(NonStandardInSequence))),
		FillStrategy:                FillStrategy(canonical(strategy, string(FillDepth), string(FillBreadth))),
		IncludeTentative:            includeTentative,
		AllowUnqualified:            allowUnqualified,
	}.WithDefaults()
	return p, p.Validate()
}

func canonical(s string, known ...string) string {
	s = strings.TrimSpace(s)
	for _, k := range known {
		if strings.EqualFold(s, k) {
			return k
		}
	}
	return s
}
