package scheduler

import (
	"fmt"
	"testing"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ripperSets = []models.SquadronCallsigns{
	{SquadronID: "vfa-11", Callsigns: []string{"Ripper"}},
	{SquadronID: "vfa-31", Callsigns: []string{"Felix"}},
}

func gapPolicy(cohesion models.Cohesion) models.Policy {
	p := models.DefaultPolicy()
	p.AssignmentScope = models.ScopeFillGaps
	p.SquadronCohesion = cohesion
	p.FillStrategy = models.FillDepth
	return p
}

func member(id, squadron string, board int, q ...models.Qualification) models.Person {
	return models.Person{ID: id, Callsign: id, BoardNumber: board, SquadronID: squadron,
		RollCall: models.RollCallPresent, Qualifications: q}
}

func slotIDs(res models.AssignResult, flightID string) map[int]string {
	out := make(map[int]string)
	for _, sa := range res.Assignments[flightID] {
		out[sa.Slot] = sa.Person.ID
	}
	return out
}

func TestConsolidate_SingletonJoinsSameSquadronFlight(t *testing.T) {
	flights := []models.Flight{
		{ID: "A", Callsign: "Ripper", FlightNumber: 1},
		{ID: "B", Callsign: "Ripper", FlightNumber: 2},
	}
	people := []models.Person{
		member("x", "vfa-11", 110),
		member("b1", "vfa-11", 101, models.QualFlightLead),
		member("b2", "vfa-11", 102),
		member("b3", "vfa-11", 103, models.QualSectionLead),
	}
	s := NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionEnforced))
	s.Prefill([]models.Assignment{
		{FlightID: "A", Slot: 1, PersonID: "x"},
		{FlightID: "B", Slot: 1, PersonID: "b1"},
		{FlightID: "B", Slot: 2, PersonID: "b2"},
		{FlightID: "B", Slot: 3, PersonID: "b3"},
	})
	res := s.Run()

	assert.Empty(t, res.Assignments["A"])
	assert.Equal(t, map[int]string{1: "b1", 2: "b2", 3: "b3", 4: "x"}, slotIDs(res, "B"))
}

func TestConsolidate_EnforcedNeverCrossesSquadrons(t *testing.T) {
	flights := []models.Flight{
		{ID: "A", Callsign: "Ripper", FlightNumber: 1},
		{ID: "B", Callsign: "Felix", FlightNumber: 1},
	}
	people := []models.Person{
		member("x", "vfa-11", 110),
		member("b1", "vfa-31", 301, models.QualFlightLead),
		member("b2", "vfa-31", 302),
	}
	prior := []models.Assignment{
		{FlightID: "A", Slot: 1, PersonID: "x"},
		{FlightID: "B", Slot: 1, PersonID: "b1"},
		{FlightID: "B", Slot: 2, PersonID: "b2"},
	}

	s := NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionEnforced))
	s.Prefill(prior)
	res := s.Run()
	assert.Equal(t, map[int]string{1: "x"}, slotIDs(res, "A"))
	assert.Len(t, res.Assignments["B"], 2)

	s = NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionPrioritized))
	s.Prefill(prior)
	res = s.Run()
	assert.Empty(t, res.Assignments["A"])
	assert.Equal(t, map[int]string{1: "b1", 2: "b2", 3: "x"}, slotIDs(res, "B"))
}

func TestConsolidate_EnforcedKeepsSquadronlessSingleton(t *testing.T) {
	flights := []models.Flight{
		{ID: "A", Callsign: "Bogus", FlightNumber: 1},
		{ID: "B", Callsign: "Ripper", FlightNumber: 1},
	}
	people := []models.Person{
		member("x", "", 110),
		member("b1", "vfa-11", 101, models.QualFlightLead),
		member("b2", "vfa-11", 102),
	}
	prior := []models.Assignment{
		{FlightID: "A", Slot: 1, PersonID: "x"},
		{FlightID: "B", Slot: 1, PersonID: "b1"},
		{FlightID: "B", Slot: 2, PersonID: "b2"},
	}

	s := NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionEnforced))
	s.Prefill(prior)
	res := s.Run()
	assert.Equal(t, map[int]string{1: "x"}, slotIDs(res, "A"))
	assert.Equal(t, map[int]string{1: "b1", 2: "b2"}, slotIDs(res, "B"))

	s = NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionPrioritized))
	s.Prefill(prior)
	res = s.Run()
	assert.Empty(t, res.Assignments["A"])
	assert.Equal(t, map[int]string{1: "b1", 2: "b2", 3: "x"}, slotIDs(res, "B"))
}

func TestConsolidate_LeastSeniorSingletonMovesFirst(t *testing.T) {
	flights := []models.Flight{
		{ID: "A", Callsign: "Ripper", FlightNumber: 1},
		{ID: "B", Callsign: "Ripper", FlightNumber: 2},
		{ID: "C", Callsign: "Ripper", FlightNumber: 3},
	}
	people := []models.Person{
		member("wing", "vfa-11", 200),
		member("lead", "vfa-11", 100, models.QualFlightLead),
		member("c1", "vfa-11", 101, models.QualFlightLead),
		member("c2", "vfa-11", 102),
	}
	s := NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionIgnore))
	s.Prefill([]models.Assignment{
		{FlightID: "A", Slot: 1, PersonID: "wing"},
		{FlightID: "B", Slot: 1, PersonID: "lead"},
		{FlightID: "C", Slot: 1, PersonID: "c1"},
		{FlightID: "C", Slot: 2, PersonID: "c2"},
	})
	res := s.Run()

	assert.Empty(t, res.Assignments["A"])
	assert.Equal(t, map[int]string{1: "lead", 2: "wing"}, slotIDs(res, "B"))
	assert.Equal(t, map[int]string{1: "c1", 2: "c2"}, slotIDs(res, "C"))
}

func TestConsolidate_HigherBoardNumberMovesFirst(t *testing.T) {
	flights := []models.Flight{
		{ID: "A", Callsign: "Ripper", FlightNumber: 1},
		{ID: "B", Callsign: "Ripper", FlightNumber: 2},
	}
	people := []models.Person{member("p", "vfa-11", 100), member("q", "vfa-11", 300)}
	s := NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionIgnore))
	s.Prefill([]models.Assignment{
		{FlightID: "A", Slot: 1, PersonID: "p"},
		{FlightID: "B", Slot: 1, PersonID: "q"},
	})
	res := s.Run()

	assert.Equal(t, map[int]string{1: "p", 2: "q"}, slotIDs(res, "A"))
	assert.Empty(t, res.Assignments["B"])
}

func TestConsolidate_RoundCap(t *testing.T) {
	require.Equal(t, 10, maxConsolidationRounds)

	var flights []models.Flight
	var people []models.Person
	var prior []models.Assignment
	for i := 0; i < 30; i++ {
		fid := fmt.Sprintf("f%02d", i)
		pid := fmt.Sprintf("p%02d", i)
		flights = append(flights, models.Flight{ID: fid, Callsign: "Ripper", FlightNumber: i + 1})
		people = append(people, member(pid, "vfa-11", 100+i))
		prior = append(prior, models.Assignment{FlightID: fid, Slot: 1, PersonID: pid})
	}

	s := NewScheduler(flights, people, ripperSets, gapPolicy(models.CohesionIgnore))
	s.Prefill(prior)
	res := s.Run()

	nonEmpty := 0
	for _, f := range flights {
		if len(res.Assignments[f.ID]) > 0 {
			nonEmpty++
		}
	}
	assert.Equal(t, 30-maxConsolidationRounds, nonEmpty)
	assert.Equal(t, 30, res.Placed())
}

func TestConsolidate_SkippedForBreadth(t *testing.T) {
	flights := []models.Flight{
		{ID: "A", Callsign: "Ripper", FlightNumber: 1},
		{ID: "B", Callsign: "Ripper", FlightNumber: 2},
	}
	people := []models.Person{member("p", "vfa-11", 100), member("q", "vfa-11", 300)}
	p := gapPolicy(models.CohesionIgnore)
	p.FillStrategy = models.FillBreadth

	s := NewScheduler(flights, people, ripperSets, p)
	s.Prefill([]models.Assignment{
		{FlightID: "A", Slot: 1, PersonID: "p"},
		{FlightID: "B", Slot: 1, PersonID: "q"},
	})
	res := s.Run()

	assert.Len(t, res.Assignments["A"], 1)
	assert.Len(t, res.Assignments["B"], 1)
}
