package scheduler

import "github.com/arnavshah/flight-assigner-go/pkg/models"

// Availability is a set of RSVP-style availability terms
type Availability uint8

const (
	AvailAccepted Availability = 1 << iota
	AvailTentative
)

// QualRule is the kind of qualification check a gate applies
type QualRule int

const (
	// QualAny accepts everyone
	QualAny QualRule = iota
	// QualRequired accepts anyone satisfying one of Gate.Required
	QualRequired
	// QualNotOverqualified rejects holders of lead-level qualifications
	QualNotOverqualified
)

// Gate is one eligibility filter in a cascade. An empty Squadron means any
// squadron is acceptable.
type Gate struct {
	Availability Availability
	Squadron     string
	Rule         QualRule
	Required     []models.Qualification
}

// BuildGates returns the ordered, progressively looser gates for one slot.
// Slot 1 is the flight lead, slot 3 the section lead, 2 and 4 are wingmen.
func BuildGates(slot int, flightSquadron string, p models.Policy) []Gate {
	avail := AvailAccepted
	if p.IncludeTentative {
		avail |= AvailTentative
	}

	tier := func(rule QualRule, required ...models.Qualification) []Gate {
		same := Gate{Availability: avail, Squadron: flightSquadron, Rule: rule, Required: required}
		anySq := Gate{Availability: avail, Rule: rule, Required: required}
		switch {
		case flightSquadron == "":
			// non-standard flight, nothing to be cohesive with
			return []Gate{anySq}
		case p.SquadronCohesion == models.CohesionEnforced:
			return []Gate{same}
		default:
			return []Gate{same, anySq}
		}
	}

	var gates []Gate
	switch slot {
	case 1:
		gates = append(gates, tier(QualRequired, models.QualMissionCommander)...)
		gates = append(gates, tier(QualRequired, models.QualFlightLead)...)
		if p.AllowUnqualified {
			gates = append(gates, tier(QualAny)...)
		}
	case 3:
		gates = append(gates, tier(QualRequired, models.QualSectionLead)...)
		if p.AllowUnqualified {
			gates = append(gates, tier(QualAny)...)
		}
	case 2, 4:
		gates = append(gates, tier(QualNotOverqualified)...)
		gates = append(gates, tier(QualAny)...)
	}
	return gates
}
