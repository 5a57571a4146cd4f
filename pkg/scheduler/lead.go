package scheduler

import "github.com/arnavshah/flight-assigner-go/pkg/models"

// SelectLead suggests a mission lead: the most senior slot-1 occupant across
// all flights. Ties go to the earlier flight.
func SelectLead(flights []models.Flight, assignments map[string][]models.SlotAssignment) (models.MissionLead, bool) {
	var lead models.MissionLead
	found := false
	for _, f := range flights {
		for _, sa := range assignments[f.ID] {
			if sa.Slot != 1 {
				continue
			}
			if !found || sa.Person.Seniority() < lead.Person.Seniority() {
				lead = models.MissionLead{
					Person:         sa.Person,
					FlightID:       f.ID,
					FlightCallsign: f.Callsign,
					FlightNumber:   f.FlightNumber,
				}
				found = true
			}
		}
	}
	return lead, found
}
