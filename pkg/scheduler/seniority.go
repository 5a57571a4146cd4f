package scheduler

import "github.com/arnavshah/flight-assigner-go/pkg/models"

// PickMostSenior returns the candidate with the lowest billet order. Ties go
// to whoever appears first.
func PickMostSenior(candidates []models.Person) (models.Person, bool) {
	if len(candidates) == 0 {
		return models.Person{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Seniority() < best.Seniority() {
			best = c
		}
	}
	return best, true
}

// qualificationRank orders people by their highest qualification, 1 being
// the most senior. Used to decide which singleton moves first.
func qualificationRank(p models.Person) int {
	switch {
	case p.Holds(models.QualStrikeLead):
		return 1
	case p.Holds(models.QualMissionCommander):
		return 2
	case p.Holds(models.QualFlightLead):
		return 3
	case p.Holds(models.QualSectionLead):
		return 4
	case p.Holds(models.QualInstructor), p.Holds(models.QualLSO):
		return 5
	default:
		return 6
	}
}
