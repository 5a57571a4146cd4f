package scheduler

import (
	"strings"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
)

// pool is the set of people not yet placed, in input order
type pool []models.Person

// without returns a new pool lacking every person with the given id
func (p pool) without(id string) pool {
	out := make(pool, 0, len(p))
	for _, person := range p {
		if person.ID != id {
			out = append(out, person)
		}
	}
	return out
}

// Filter returns the people in pool that pass gate g, preserving order
func Filter(pool []models.Person, g Gate) []models.Person {
	var out []models.Person
	for _, p := range pool {
		if matchesAvailability(p, g.Availability) &&
			matchesSquadron(p, g.Squadron) &&
			matchesQualification(p, g) {
			out = append(out, p)
		}
	}
	return out
}

// availabilityOf maps roll-call and RSVP to a single term. Roll-call wins
// whenever it is set; zero means the person can never be placed.
func availabilityOf(p models.Person) Availability {
	rc := strings.TrimSpace(string(p.RollCall))
	switch {
	case strings.EqualFold(rc, string(models.RollCallAbsent)):
		return 0
	case strings.EqualFold(rc, string(models.RollCallPresent)):
		return AvailAccepted
	case strings.EqualFold(rc, string(models.RollCallTentative)):
		return AvailTentative
	}

	rsvp := strings.TrimSpace(string(p.RSVP))
	switch {
	case strings.EqualFold(rsvp, string(models.RSVPAccepted)):
		return AvailAccepted
	case strings.EqualFold(rsvp, string(models.RSVPTentative)):
		return AvailTentative
	}
	return 0
}

func matchesAvailability(p models.Person, allowed Availability) bool {
	a := availabilityOf(p)
	return a != 0 && allowed&a != 0
}

func matchesSquadron(p models.Person, squadron string) bool {
	return squadron == "" || p.SquadronID == squadron
}

func matchesQualification(p models.Person, g Gate) bool {
	switch g.Rule {
	case QualNotOverqualified:
		return !Overqualified(p)
	case QualRequired:
		for _, q := range g.Required {
			if Satisfies(p, q) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Overqualified reports whether p holds a lead-level qualification that a
// wingman slot does not need
func Overqualified(p models.Person) bool {
	return p.Holds(models.QualFlightLead) ||
		p.Holds(models.QualSectionLead) ||
		p.Holds(models.QualMissionCommander) ||
		p.Holds(models.QualStrikeLead)
}

// Satisfies applies the qualification inclusion hierarchy: a higher lead
// qualification covers the lower ones that need the same skills.
func Satisfies(p models.Person, q models.Qualification) bool {
	switch q {
	case models.QualFlightLead:
		return p.Holds(models.QualFlightLead) || p.Holds(models.QualMissionCommander) || p.Holds(models.QualStrikeLead)
	case models.QualSectionLead:
		return p.Holds(models.QualSectionLead) || p.Holds(models.QualFlightLead) || p.Holds(models.QualMissionCommander)
	default:
		return p.Holds(q)
	}
}
